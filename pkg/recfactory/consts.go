/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

// Maximum identifier length
const MaxIdentLen = 255

// Built-in protocol method names.
//
// Every record type has these methods, unless field accessor or extension
// with the same name overrides it.
const (
	Method_Get      = "Get"
	Method_Set      = "Set"
	Method_Dig      = "Dig"
	Method_Each     = "Each"
	Method_EachPair = "EachPair"
	Method_Select   = "Select"
	Method_Length   = "Length"
	Method_Size     = "Size"
	Method_Members  = "Members"
	Method_Values   = "Values"
	Method_ValuesAt = "ValuesAt"
	Method_Equal    = "Equal"
	Method_Eql      = "Eql"
	Method_String   = "String"
)

const (
	recordStringPrefix = "#<record"
	recordStringSuffix = ">"
)
