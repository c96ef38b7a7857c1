package export

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Faultbox/plantmesh/pkg/geom"
	"github.com/Faultbox/plantmesh/pkg/math"
)

// Binary mesh layout, all little-endian:
//
//	"PMSH" magic, uint32 version
//	uint32 vertex count, uint32 index count
//	vertex count * 3 float32 positions
//	vertex count * 3 float32 normals
//	index count uint32 indices
const (
	binaryMagic   = "PMSH"
	BinaryVersion = 1
	headerSize    = 16
)

// Binary format errors.
var (
	ErrInvalidMagic       = errors.New("invalid mesh magic: expected 'PMSH'")
	ErrUnsupportedVersion = errors.New("unsupported mesh version")
	ErrTruncatedData      = errors.New("truncated mesh data")
)

// WriteBinary writes mesh in the packed binary layout.
func WriteBinary(w io.Writer, mesh *geom.Mesh) error {
	if err := mesh.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(binaryMagic)

	header := []uint32{BinaryVersion, uint32(len(mesh.Vertices)), uint32(len(mesh.Indices))}
	if err := binary.Write(bw, binary.LittleEndian, header); err != nil {
		return err
	}

	positions, normals := mesh.Flatten()
	if err := binary.Write(bw, binary.LittleEndian, positions); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, normals); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, mesh.Indices); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadBinary parses a mesh written by WriteBinary. Bounds are recomputed
// from the positions.
func ReadBinary(data []byte) (*geom.Mesh, error) {
	if len(data) < headerSize {
		return nil, ErrTruncatedData
	}
	if string(data[0:4]) != binaryMagic {
		return nil, ErrInvalidMagic
	}

	r := bytes.NewReader(data[4:])

	var version, vertexCount, indexCount uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: reading version", ErrTruncatedData)
	}
	if version != BinaryVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	if err := binary.Read(r, binary.LittleEndian, &vertexCount); err != nil {
		return nil, fmt.Errorf("%w: reading vertex count", ErrTruncatedData)
	}
	if err := binary.Read(r, binary.LittleEndian, &indexCount); err != nil {
		return nil, fmt.Errorf("%w: reading index count", ErrTruncatedData)
	}

	need := int64(vertexCount)*24 + int64(indexCount)*4
	if int64(r.Len()) < need {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedData, need, r.Len())
	}

	positions := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	indices := make([]uint32, indexCount)
	if err := binary.Read(r, binary.LittleEndian, positions); err != nil {
		return nil, fmt.Errorf("%w: reading positions", ErrTruncatedData)
	}
	if err := binary.Read(r, binary.LittleEndian, normals); err != nil {
		return nil, fmt.Errorf("%w: reading normals", ErrTruncatedData)
	}
	if err := binary.Read(r, binary.LittleEndian, indices); err != nil {
		return nil, fmt.Errorf("%w: reading indices", ErrTruncatedData)
	}

	mesh := &geom.Mesh{
		Vertices: make([]math.Vec3, vertexCount),
		Normals:  make([]math.Vec3, vertexCount),
		Indices:  indices,
	}
	for i := range mesh.Vertices {
		mesh.Vertices[i] = math.Vec3{X: positions[i*3], Y: positions[i*3+1], Z: positions[i*3+2]}
		mesh.Normals[i] = math.Vec3{X: normals[i*3], Y: normals[i*3+1], Z: normals[i*3+2]}
	}
	mesh.Bounds = geom.ComputeBounds(mesh.Vertices)

	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}
