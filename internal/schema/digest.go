package schema

import (
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/zeebo/blake3"
)

// Digest returns the hex-encoded BLAKE3 digest of a canonical encoding of the
// tree. The encoding covers node kinds, names, filenames and their order.
func Digest(d *Directory) string {
	h := blake3.New()
	digestDirectory(h, d)

	return hex.EncodeToString(h.Sum(nil))
}

func digestDirectory(h hash.Hash, d *Directory) {
	writeUint(h, uint64(len(d.Entries)))

	for _, e := range d.Entries {
		writeString(h, e.Name)

		if e.Node == nil {
			writeUint(h, ^uint64(0))

			continue
		}
		writeUint(h, uint64(e.Node.Kind()))

		switch n := e.Node.(type) {
		case *Directory:
			digestDirectory(h, n)

		case *FileList:
			writeUint(h, uint64(len(n.Files)))
			for _, f := range n.Files {
				writeString(h, f)
			}
		}
	}
}

func writeUint(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h.Write(buf[:]) //nolint:errcheck
}

func writeString(h hash.Hash, s string) {
	writeUint(h, uint64(len(s)))
	h.Write([]byte(s)) //nolint:errcheck
}
