package scene

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// objRef is one face-vertex reference, already resolved to 0-based pool indices.
type objRef struct {
	v, vt, vn int
}

// noRef marks an attribute the face vertex does not reference.
const noRef = math.MinInt

// objData is the indexed content of an OBJ file before expansion.
type objData struct {
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	uvs       []mgl32.Vec2
	refs      []objRef // triangulated, three per face
}

// LoadOBJ reads a Wavefront .obj file and returns an expanded Mesh.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open obj %q: %w", ErrMalformedAsset, path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseOBJ(f, name)
}

// ParseOBJ parses OBJ text and expands every face-vertex reference into its own vertex.
// Each attribute stream is resolved through its own index, so a face may reference
// position P and normal N independently. The result carries no index buffer.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	data, err := scanOBJ(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedAsset, name, err)
	}
	return expandOBJ(name, data)
}

func scanOBJ(r io.Reader) (*objData, error) {
	data := &objData{}
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: v: %w", lineNo, err)
			}
			data.positions = append(data.positions, mgl32.Vec3{v[0], v[1], v[2]})

		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vn: %w", lineNo, err)
			}
			data.normals = append(data.normals, mgl32.Vec3{v[0], v[1], v[2]})

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: vt: %w", lineNo, err)
			}
			data.uvs = append(data.uvs, mgl32.Vec2{v[0], v[1]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			refs := make([]objRef, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				ref, err := parseFaceVertex(tok, data)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				refs = append(refs, ref)
			}
			// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(refs); i++ {
				data.refs = append(data.refs, refs[0], refs[i], refs[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}
	return data, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseFaceVertex parses one face vertex token: "v", "v/vt", "v//vn", "v/vt/vn".
// OBJ indices are 1-based; negative indices count back from the current end of the pool.
func parseFaceVertex(tok string, data *objData) (objRef, error) {
	parseIdx := func(s string, poolLen int) (int, error) {
		if s == "" {
			return noRef, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return -1, fmt.Errorf("face index %q: %w", s, err)
		}
		switch {
		case n > 0:
			return n - 1, nil
		case n < 0:
			return poolLen + n, nil
		}
		return -1, fmt.Errorf("face index 0 is not valid")
	}

	parts := strings.Split(tok, "/")
	ref := objRef{v: noRef, vt: noRef, vn: noRef}
	var err error
	if ref.v, err = parseIdx(parts[0], len(data.positions)); err != nil {
		return ref, err
	}
	if len(parts) > 1 {
		if ref.vt, err = parseIdx(parts[1], len(data.uvs)); err != nil {
			return ref, err
		}
	}
	if len(parts) > 2 {
		if ref.vn, err = parseIdx(parts[2], len(data.normals)); err != nil {
			return ref, err
		}
	}
	return ref, nil
}

func expandOBJ(name string, data *objData) (*Mesh, error) {
	if len(data.positions) < 2 {
		return nil, fmt.Errorf("%w: %s declares %d positions, need at least 2",
			ErrMalformedAsset, name, len(data.positions))
	}
	if len(data.normals) < 2 {
		return nil, fmt.Errorf("%w: %s declares %d normals, need at least 2",
			ErrMalformedAsset, name, len(data.normals))
	}
	withUVs := len(data.uvs) > 1

	count := len(data.refs)
	positions := make([]mgl32.Vec3, count)
	normals := make([]mgl32.Vec3, count)
	var uvs []mgl32.Vec2
	if withUVs {
		uvs = make([]mgl32.Vec2, count)
	}

	for i, ref := range data.refs {
		if ref.v == noRef || ref.vn == noRef {
			return nil, fmt.Errorf("%w: %s face vertex %d needs both a position and a normal reference",
				ErrMalformedAsset, name, i)
		}
		if ref.v < 0 || ref.v >= len(data.positions) {
			return nil, fmt.Errorf("%w: %s face vertex %d references position %d of %d",
				ErrMalformedAsset, name, i, ref.v+1, len(data.positions))
		}
		if ref.vn < 0 || ref.vn >= len(data.normals) {
			return nil, fmt.Errorf("%w: %s face vertex %d references normal %d of %d",
				ErrMalformedAsset, name, i, ref.vn+1, len(data.normals))
		}
		positions[i] = data.positions[ref.v]
		normals[i] = data.normals[ref.vn]

		if withUVs {
			switch {
			case ref.vt == noRef:
				// Untextured face vertex in a textured file samples the origin.
			case ref.vt < 0 || ref.vt >= len(data.uvs):
				return nil, fmt.Errorf("%w: %s face vertex %d references texcoord %d of %d",
					ErrMalformedAsset, name, i, ref.vt+1, len(data.uvs))
			default:
				uvs[i] = data.uvs[ref.vt]
			}
		}
	}

	if !withUVs {
		warnNoTexCoords(name)
	}
	return NewMesh(name, positions, normals, uvs, nil), nil
}
