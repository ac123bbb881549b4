/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/untillpro/goutils/logger"
)

type declSourceAST struct {
	Decls []*declAST `parser:"( @@ ';'? )*"`
}

type declAST struct {
	Pos    lexer.Position
	Name   string      `parser:"( 'RECORD' @Ident )?"`
	Fields []FieldName `parser:"'(' @Ident ( ',' @Ident )* ')'"`
}

var declParser = participle.MustBuild[declSourceAST](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\n]*`},
		{Name: "Ident", Pattern: `[a-zA-Z_$][\w$]*`},
		{Name: "Punct", Pattern: `[(),;]`},
		{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
	})),
	participle.Elide("Whitespace", "Comment"),
)

func parseDecl(src string) (*declSourceAST, error) {
	ast, err := declParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidError, err)
	}
	if len(ast.Decls) == 0 {
		return nil, ErrMissed("record declarations")
	}
	return ast, nil
}

// Creates record types from declarations source.
//
// Stops at first failed declaration, types registered before stay registered.
func declare(f IFactory, src string, ext ...Methods) ([]IRecordType, error) {
	ast, err := parseDecl(src)
	if err != nil {
		return nil, err
	}

	tt := make([]IRecordType, 0, len(ast.Decls))
	for _, d := range ast.Decls {
		var (
			t   IRecordType
			err error
		)
		if d.Name == "" {
			t, err = f.New(d.Fields, ext...)
		} else {
			t, err = f.NewNamed(d.Name, d.Fields, ext...)
		}
		if err != nil {
			return nil, fmt.Errorf("%v: %w", d.Pos, err)
		}
		tt = append(tt, t)
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%d record type(s) declared", len(tt)))
	}

	return tt, nil
}
