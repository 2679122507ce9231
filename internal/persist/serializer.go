package persist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"tileland/internal/coords"
	"tileland/internal/voxel"
	"tileland/internal/world"
	"tileland/internal/worldgen"
)

func encodeHeaderForChecksum(h Header) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, byteOrder, headerForChecksum(h)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func headerChecksum(h Header) (uint32, error) {
	b, err := encodeHeaderForChecksum(h)
	if err != nil {
		return 0, err
	}
	return CRC32(b), nil
}

// Save writes a world's chunks to a .tlwf file at path, following the
// two-stage protocol of original_source/MapSerializer.cpp: reserve header
// space, write metadata, write chunk data while building the index in
// memory, write the index, then seek back and finalize the header with a
// CRC32 covering the header itself (zeroed checksum field).
func Save(w *world.World, meta Metadata, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := NewWriter(f)

	// Reserve header space.
	if err := bw.WriteValue(Header{}); err != nil {
		return err
	}

	metadataOffset, err := bw.Tell()
	if err != nil {
		return err
	}
	if err := bw.writeMetadata(meta); err != nil {
		return err
	}

	type chunkRef struct {
		coord coords.ChunkCoord
		chunk *voxel.Chunk
	}
	var chunks []chunkRef
	w.Iterate(func(c coords.ChunkCoord, ch *voxel.Chunk) bool {
		chunks = append(chunks, chunkRef{c, ch})
		return true
	})

	dataOffset, err := bw.Tell()
	if err != nil {
		return err
	}

	index := make([]ChunkIndexEntry, 0, len(chunks))
	for _, ref := range chunks {
		offset, err := bw.Tell()
		if err != nil {
			return err
		}
		encoded := EncodeChunk(ref.chunk)
		if err := bw.WriteBytes(encoded); err != nil {
			return err
		}
		index = append(index, ChunkIndexEntry{
			CX: int32(ref.coord.X), CY: int32(ref.coord.Y), CZ: int32(ref.coord.Z),
			Offset:   uint64(offset),
			Size:     uint32(len(encoded)),
			Checksum: chunkChecksum(encoded),
		})
	}

	indexOffset, err := bw.Tell()
	if err != nil {
		return err
	}
	if err := bw.WriteValue(uint64(len(index))); err != nil {
		return err
	}
	for _, e := range index {
		if err := bw.WriteValue(e); err != nil {
			return err
		}
	}

	header := Header{
		Magic:          MagicTLWF,
		VersionMajor:   FormatVersionMajor,
		VersionMinor:   FormatVersionMinor,
		Endianness:     EndiannessLittle,
		ChecksumType:   ChecksumTypeCRC32,
		MetadataOffset: uint64(metadataOffset),
		IndexOffset:    uint64(indexOffset),
		DataOffset:     uint64(dataOffset),
	}
	sum, err := headerChecksum(header)
	if err != nil {
		return err
	}
	header.HeaderChecksum = sum

	if _, err := bw.Seek(0, io.SeekStart); err != nil {
		return err
	}
	return bw.WriteValue(header)
}

func readAndValidateHeader(br *Reader) (Header, error) {
	var h Header
	if err := br.ReadValue(&h); err != nil {
		return h, err
	}
	if h.Magic != MagicTLWF {
		return h, fmt.Errorf("%w: got 0x%08X", ErrBadMagic, h.Magic)
	}
	if h.VersionMajor != FormatVersionMajor {
		return h, fmt.Errorf("%w: major %d.%d", ErrUnsupportedVersion, h.VersionMajor, h.VersionMinor)
	}
	if h.Endianness != EndiannessLittle {
		return h, fmt.Errorf("%w: tag 0x%02X", ErrUnsupportedEndian, h.Endianness)
	}
	want, err := headerChecksum(h)
	if err != nil {
		return h, err
	}
	if want != h.HeaderChecksum {
		return h, fmt.Errorf("%w: header", ErrBadChecksum)
	}
	return h, nil
}

func readIndex(br *Reader, indexOffset uint64) ([]ChunkIndexEntry, error) {
	if _, err := br.Seek(int64(indexOffset), io.SeekStart); err != nil {
		return nil, err
	}
	var count uint64
	if err := br.ReadValue(&count); err != nil {
		return nil, err
	}
	entries := make([]ChunkIndexEntry, count)
	for i := range entries {
		if err := br.ReadValue(&entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// Load reads a .tlwf file back into a new world.World using gen as the
// generator for any chunk created after load (nothing in the file needs
// regenerating — every loaded chunk came from the index).
func Load(path string, gen worldgen.Generator) (*world.World, Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Metadata{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, Metadata{}, err
	}
	defer f.Close()
	return loadFromReadSeeker(f, gen)
}

func loadFromReadSeeker(rs io.ReadSeeker, gen worldgen.Generator) (*world.World, Metadata, error) {
	br, err := NewReader(rs)
	if err != nil {
		return nil, Metadata{}, err
	}

	header, err := readAndValidateHeader(br)
	if err != nil {
		return nil, Metadata{}, err
	}

	if _, err := br.Seek(int64(header.MetadataOffset), io.SeekStart); err != nil {
		return nil, Metadata{}, err
	}
	meta, err := br.readMetadata()
	if err != nil {
		return nil, Metadata{}, err
	}

	entries, err := readIndex(br, header.IndexOffset)
	if err != nil {
		return nil, Metadata{}, err
	}

	w := world.New(gen)
	for _, e := range entries {
		if _, err := br.Seek(int64(e.Offset), io.SeekStart); err != nil {
			return nil, Metadata{}, err
		}
		data, err := br.ReadBytes(int(e.Size))
		if err != nil {
			return nil, Metadata{}, err
		}
		if CRC32(data) != e.Checksum {
			return nil, Metadata{}, fmt.Errorf("%w: chunk (%d,%d,%d)", ErrBadChecksum, e.CX, e.CY, e.CZ)
		}
		coord := coords.ChunkCoord{X: int(e.CX), Y: int(e.CY), Z: int(e.CZ)}
		c := voxel.NewChunk(coord)
		if err := DecodeChunk(c, data); err != nil {
			return nil, Metadata{}, err
		}
		w.AddChunk(coord, c)
	}

	return w, meta, nil
}

// SaveSummary is the result of ReadSaveSummary: everything about a save
// that can be learned without decoding any chunk bodies.
type SaveSummary struct {
	Header     Header
	Metadata   Metadata
	ChunkCount int
}

// ReadSaveSummary reads a .tlwf's header, metadata and index-entry count,
// without touching any chunk data — for a save browser to list saves
// cheaply.
func ReadSaveSummary(path string) (SaveSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return SaveSummary{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return SaveSummary{}, err
	}
	defer f.Close()

	br, err := NewReader(f)
	if err != nil {
		return SaveSummary{}, err
	}
	header, err := readAndValidateHeader(br)
	if err != nil {
		return SaveSummary{}, err
	}
	if _, err := br.Seek(int64(header.MetadataOffset), io.SeekStart); err != nil {
		return SaveSummary{}, err
	}
	meta, err := br.readMetadata()
	if err != nil {
		return SaveSummary{}, err
	}
	if _, err := br.Seek(int64(header.IndexOffset), io.SeekStart); err != nil {
		return SaveSummary{}, err
	}
	var count uint64
	if err := br.ReadValue(&count); err != nil {
		return SaveSummary{}, err
	}
	return SaveSummary{Header: header, Metadata: meta, ChunkCount: int(count)}, nil
}

// UpdateMetadata rewrites a save's metadata block in place, when the new
// metadata encodes to exactly the size of the old block (so no other
// offset in the file needs to shift). Otherwise it returns
// ErrMetadataSizeChanged — callers that need to grow metadata must
// re-Save the whole file.
func UpdateMetadata(path string, meta Metadata) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return err
	}
	defer f.Close()

	br, err := NewReader(f)
	if err != nil {
		return err
	}
	header, err := readAndValidateHeader(br)
	if err != nil {
		return err
	}

	oldEnd := header.DataOffset
	oldSize := oldEnd - header.MetadataOffset

	var buf bytes.Buffer
	bw := NewWriter(nopSeeker{&buf})
	if err := bw.writeMetadata(meta); err != nil {
		return err
	}
	if uint64(buf.Len()) != oldSize {
		return fmt.Errorf("%w: old %d bytes, new %d bytes", ErrMetadataSizeChanged, oldSize, buf.Len())
	}

	if _, err := f.Seek(int64(header.MetadataOffset), io.SeekStart); err != nil {
		return err
	}
	_, err = f.Write(buf.Bytes())
	return err
}

// nopSeeker adapts a bytes.Buffer (which has no Seek) to io.WriteSeeker for
// the one-shot, append-only writes UpdateMetadata needs.
type nopSeeker struct {
	*bytes.Buffer
}

func (nopSeeker) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}
