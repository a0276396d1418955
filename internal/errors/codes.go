package errors

// Error codes reported by the shader argument extractor.
//
// Error code ranges:
// E0100-E0109: Lexical errors
// E0110-E0119: Syntax errors
// E0120-E0129: Structural errors
// E0800-E0899: Warning codes
// E0900-E0999: Cross-check errors

const (
	// E0100: A character that cannot start any token
	ErrorUnrecognizedCharacter = "E0100"

	// E0101: A block comment that runs to the end of input
	ErrorUnterminatedComment = "E0101"

	// E0110: A token outside the expected set
	ErrorUnexpectedToken = "E0110"

	// E0111: An array size that is not a positive integer
	ErrorInvalidArraySize = "E0111"

	// E0120: No 'void main()' before the end of input
	ErrorMissingEntrySignature = "E0120"

	// E0121: A malformed entry signature, or a block with none
	ErrorIncompleteEntrySignature = "E0121"

	// E0122: A declaration whose type is 'void'
	ErrorVoidParameter = "E0122"

	// E0800: Two declarations with the same name
	WarningDuplicateParameter = "E0800"

	// E0801: A declaration using the reserved 'gl_' prefix
	WarningReservedName = "E0801"

	// E0900: The reference grammar disagrees with the parser
	ErrorGrammarMismatch = "E0900"
)

// GetErrorDescription returns a human-readable description for an error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnrecognizedCharacter:
		return "Unrecognized character in shader source"
	case ErrorUnterminatedComment:
		return "Block comment is not terminated"
	case ErrorUnexpectedToken:
		return "Unexpected token in declaration"
	case ErrorInvalidArraySize:
		return "Array size must be a positive integer constant"
	case ErrorMissingEntrySignature:
		return "Entry signature 'void main()' is missing"
	case ErrorIncompleteEntrySignature:
		return "Entry signature is incomplete"
	case ErrorVoidParameter:
		return "Parameter declared with type 'void'"
	case WarningDuplicateParameter:
		return "Parameter declared more than once"
	case WarningReservedName:
		return "Parameter name uses the reserved 'gl_' prefix"
	case ErrorGrammarMismatch:
		return "Reference grammar disagrees with the parser"
	default:
		return "Unknown error"
	}
}

// GetErrorCategory returns the category of an error code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0110":
		return "Lexical"
	case code >= "E0110" && code < "E0120":
		return "Syntax"
	case code >= "E0120" && code < "E0130":
		return "Structural"
	case code >= "E0800" && code < "E0900":
		return "Warning"
	case code >= "E0900" && code < "E1000":
		return "Cross-check"
	default:
		return "Unknown"
	}
}
