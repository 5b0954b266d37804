package scene

import "errors"

var (
	// ErrMalformedAsset is returned when a geometry file is missing or lacks required data.
	ErrMalformedAsset = errors.New("malformed asset")

	// ErrUnsupportedShape is returned for a shape kind outside the procedural set.
	ErrUnsupportedShape = errors.New("unsupported shape kind")

	// ErrIndexOverflow is returned when a generated shape cannot be addressed with 16-bit indices.
	ErrIndexOverflow = errors.New("shape exceeds 16-bit index range")

	// ErrInvalidMesh is returned by Mesh.Validate.
	ErrInvalidMesh = errors.New("invalid mesh")
)

