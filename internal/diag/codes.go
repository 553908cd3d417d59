package diag

// Stable diagnostic codes, grouped by pipeline stage: 1xx lexical,
// 2xx syntactic, 3xx semantic. Code 0 stays reserved for uncoded
// diagnostics and is never rendered.
const (
	CodeUnterminatedString  = 101
	CodeUnterminatedChar    = 102
	CodeEmptyChar           = 103
	CodeUnrecognizedChar    = 104
	CodeUnexpectedToken     = 201
	CodeExpectedValue       = 202
	CodeMissingTypeColon    = 203
	CodeExpectedExpression  = 204
	CodeInvalidType         = 301
	CodeUndeclared          = 302
	CodeTypeMismatch        = 303
	CodeInvalidArguments    = 304
	CodeNoConstructor       = 305
	CodeUnknownAttribute    = 306
	CodeAccessViolation     = 307
	CodeReturnOutsideFn     = 308
	CodeBreakOutsideLoop    = 309
	CodeContinueOutsideLoop = 310
	CodeModifierOutsideCls  = 311
	CodeInvalidCondition    = 312
)
