package snapio

/* dump.go implements the on-disk snapshot format. The layout is a small
little-endian header followed by one zstd block holding the cell records:

    magic    uint32  (MagicNumber)
    version  uint32
    flags    uint32  (bit 0: velocity stored)
    n        int64   (cell count)
    time     float64
    nBlock   int64   (compressed size of the cell block)
    block    nBlock bytes of zstd-compressed float64 records

Each record is x, y, delta, f and, when bit 0 of flags is set, u and v. The
compressed block is the whole rest of the file, which makes truncation
detectable from the header alone. */

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/DataDog/zstd"
)

const (
	// MagicNumber is an arbitrary number at the start of all vofpost dump
	// files which should help identify when the code is run on something
	// else by accident.
	MagicNumber = 0xba511150
	// ReverseMagicNumber is the magic number if read on a machine with
	// flipped endianness.
	ReverseMagicNumber = 0x501151ba
	Version            = 1

	velocityFlag = uint32(1)

	dumpHeaderSize = 4 + 4 + 4 + 8 + 8 + 8
)

var byteOrder = binary.LittleEndian

// dumpHeader is the fixed-size portion of a dump file.
type dumpHeader struct {
	Magic, Version, Flags uint32
	N                     int64
	Time                  float64
	NBlock                int64
}

// Read reads the snapshot stored at path. All failure modes (missing file,
// foreign or corrupted header, unknown version, truncated cell block) are
// reported as an *UnreadableError and no partial snapshot is returned.
func Read(path string) (*Snapshot, error) {
	info, err := os.Stat(path)
	if err != nil {
		ue := unreadable(path, "the file does not exist or cannot "+
			"be accessed: %s", err.Error())
		ue.NotExist = os.IsNotExist(err)
		return nil, ue
	} else if info.IsDir() {
		return nil, unreadable(path, "the path is a directory, not a "+
			"snapshot file")
	} else if info.Size() < dumpHeaderSize {
		return nil, unreadable(path, "the file is %d bytes, which is too "+
			"small to even hold a snapshot header (%d bytes)",
			info.Size(), dumpHeaderSize)
	}

	fp, err := os.Open(path)
	if err != nil {
		return nil, unreadable(path, "the file cannot be opened: %s",
			err.Error())
	}
	defer fp.Close()

	hd := &dumpHeader{}
	if err := binary.Read(fp, byteOrder, hd); err != nil {
		return nil, unreadable(path, "the header cannot be read: %s",
			err.Error())
	}

	switch {
	case hd.Magic == ReverseMagicNumber:
		return nil, unreadable(path, "the file was written on a machine "+
			"with the opposite endianness")
	case hd.Magic != MagicNumber:
		return nil, unreadable(path, "the file does not start with the "+
			"snapshot magic number (found 0x%08x, want 0x%08x), so it is "+
			"probably not a snapshot at all", hd.Magic, uint32(MagicNumber))
	case hd.Version > Version:
		return nil, unreadable(path, "the file uses format version %d, "+
			"but this build only understands versions up to %d",
			hd.Version, Version)
	case hd.Flags&^velocityFlag != 0:
		return nil, unreadable(path, "the header sets unknown flag bits "+
			"0x%x", hd.Flags&^velocityFlag)
	case hd.N < 0:
		return nil, unreadable(path, "the header claims a negative cell "+
			"count, %d", hd.N)
	case hd.NBlock < 0:
		return nil, unreadable(path, "the header claims a negative cell "+
			"block size, %d", hd.NBlock)
	case info.Size() != dumpHeaderSize+hd.NBlock:
		return nil, unreadable(path, "the header claims a %d byte cell "+
			"block, but the file holds %d bytes after the header. The "+
			"file was likely truncated by an interrupted write.",
			hd.NBlock, info.Size()-dumpHeaderSize)
	}

	block := make([]byte, hd.NBlock)
	if _, err := io.ReadFull(fp, block); err != nil {
		return nil, unreadable(path, "the cell block cannot be read: %s",
			err.Error())
	}

	raw, err := zstd.Decompress(nil, block)
	if err != nil {
		return nil, unreadable(path, "the cell block cannot be "+
			"decompressed: %s", err.Error())
	}

	stride := recordStride(hd.Flags)
	if int64(len(raw)) != 8*stride*hd.N {
		return nil, unreadable(path, "the cell block decompresses to %d "+
			"bytes, but %d cells with %d values each need %d bytes",
			len(raw), hd.N, stride, 8*stride*hd.N)
	}

	vals := make([]float64, stride*hd.N)
	if err := binary.Read(bytes.NewReader(raw), byteOrder, vals); err != nil {
		return nil, unreadable(path, "the cell block cannot be decoded: %s",
			err.Error())
	}

	snap := &Snapshot{Time: hd.Time, Cells: make([]Cell, hd.N)}
	if hd.Flags&velocityFlag != 0 {
		snap.U = make([]float64, hd.N)
		snap.V = make([]float64, hd.N)
	}

	for i := int64(0); i < hd.N; i++ {
		rec := vals[i*stride : (i+1)*stride]
		snap.Cells[i] = Cell{X: rec[0], Y: rec[1], Delta: rec[2], F: rec[3]}
		if snap.Cells[i].Delta <= 0 {
			return nil, unreadable(path, "cell %d has a non-positive "+
				"width, %g. The cell block is garbage.", i,
				snap.Cells[i].Delta)
		}
		if hd.Flags&velocityFlag != 0 {
			snap.U[i], snap.V[i] = rec[4], rec[5]
		}
	}

	return snap, nil
}

func recordStride(flags uint32) int64 {
	if flags&velocityFlag != 0 {
		return 6
	}
	return 4
}

// Write writes snap to path in the dump format. Velocity columns are stored
// only when the snapshot carries them.
func Write(path string, snap *Snapshot) error {
	flags := uint32(0)
	if len(snap.U) != len(snap.V) {
		return fmt.Errorf("the snapshot has %d u values but %d v values",
			len(snap.U), len(snap.V))
	} else if len(snap.U) > 0 && len(snap.U) != len(snap.Cells) {
		return fmt.Errorf("the snapshot has %d cells but %d velocity values",
			len(snap.Cells), len(snap.U))
	} else if snap.HasVelocity() {
		flags |= velocityFlag
	}

	stride := recordStride(flags)
	vals := make([]float64, 0, stride*int64(len(snap.Cells)))
	for i, c := range snap.Cells {
		vals = append(vals, c.X, c.Y, c.Delta, c.F)
		if flags&velocityFlag != 0 {
			vals = append(vals, snap.U[i], snap.V[i])
		}
	}

	raw := &bytes.Buffer{}
	if err := binary.Write(raw, byteOrder, vals); err != nil {
		return err
	}
	block, err := zstd.CompressLevel(nil, raw.Bytes(), 1)
	if err != nil {
		return err
	}

	hd := &dumpHeader{
		Magic: MagicNumber, Version: Version, Flags: flags,
		N: int64(len(snap.Cells)), Time: snap.Time,
		NBlock: int64(len(block)),
	}

	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()

	if err := binary.Write(fp, byteOrder, hd); err != nil {
		return err
	}
	if _, err := fp.Write(block); err != nil {
		return err
	}
	return nil
}
