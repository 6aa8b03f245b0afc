package gerror

// ErrorCode classifies errors returned while building a validator.
type ErrorCode string

const (
	// InvalidConfiguration validator configuration is unusable.
	InvalidConfiguration ErrorCode = "Invalid Configuration"
	// InvalidDefinition a named sub-schema could not be registered.
	InvalidDefinition ErrorCode = "Invalid Schema Definition"
	// InvalidSchema schema compilation failed.
	InvalidSchema ErrorCode = "Invalid Schema"
	// MarshallingError Marshalling/UnMarshalling failed.
	MarshallingError ErrorCode = "Marshaling/UnMarshaling failed"
	// InternalError internal error.
	InternalError ErrorCode = "Internal Error"
)

func (e ErrorCode) String() string {
	return string(e)
}
