package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
)

// Hasher builds a content key from a sequence of byte strings.
// Each part is length-prefixed so that part boundaries change the key.
type Hasher struct {
	h hash.Hash
}

func NewHasher() *Hasher {
	return &Hasher{h: sha256.New()}
}

func (k *Hasher) Add(part []byte) *Hasher {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(part)))
	k.h.Write(n[:])
	k.h.Write(part)
	return k
}

func (k *Hasher) AddString(part string) *Hasher {
	return k.Add([]byte(part))
}

// Key returns the hex digest of everything added so far.
func (k *Hasher) Key() string {
	return hex.EncodeToString(k.h.Sum(nil))
}
