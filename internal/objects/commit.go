package objects

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
	"time"
)

// TreeEntry is one filename -> blob fingerprint mapping inside a commit's tree.
// Gitlet tracks only top-level filenames, never subdirectories (spec Non-goals:
// no partial-tree/subtree support), so a tree is just a sorted entry list.
type TreeEntry struct {
	Name string
	Hash string
}

// Commit is the immutable snapshot record described in spec §3. CommitID is
// derived, never serialized: persistence must never carry in-memory identity
// fields (design note, §9 "cyclic runtime references").
type Commit struct {
	CommitID     string
	Tree         []TreeEntry
	Parent       string // empty for the initial commit
	SecondParent string // empty unless this is a merge commit
	Message      string
	Timestamp    time.Time
}

// EpochCommitTime is the fixed timestamp used by the initial commit (spec §3).
var EpochCommitTime = time.Unix(0, 0).UTC()

// NewTree builds a canonical TreeEntry slice from a map, sorting by filename
// so serialization (and therefore the fingerprint) is deterministic.
func NewTree(files map[string]string) []TreeEntry {
	entries := make([]TreeEntry, 0, len(files))
	for name, hash := range files {
		entries = append(entries, TreeEntry{Name: name, Hash: hash})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// TreeMap flattens a commit's tree back into a filename -> hash map.
func TreeMap(entries []TreeEntry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Hash
	}
	return m
}

// serialize produces the canonical byte encoding of a commit's fields, fixed
// order, tree entries pre-sorted by NewTree. This is what gets hashed and
// stored; CommitID itself is never part of it.
func (c *Commit) serialize() []byte {
	var buf bytes.Buffer

	writeUint32(&buf, uint32(len(c.Tree)))
	for _, e := range c.Tree {
		writeString(&buf, e.Name)
		writeString(&buf, e.Hash)
	}
	writeString(&buf, c.Parent)
	writeString(&buf, c.SecondParent)
	writeString(&buf, c.Message)
	binary.Write(&buf, binary.LittleEndian, c.Timestamp.UTC().UnixNano())

	return buf.Bytes()
}

func deserializeCommit(data []byte) (*Commit, error) {
	buf := bytes.NewReader(data)
	c := &Commit{}

	count, err := readUint32(buf)
	if err != nil {
		return nil, fmt.Errorf("reading tree entry count: %w", err)
	}
	c.Tree = make([]TreeEntry, count)
	for i := range c.Tree {
		name, err := readString(buf)
		if err != nil {
			return nil, fmt.Errorf("reading tree entry name: %w", err)
		}
		hash, err := readString(buf)
		if err != nil {
			return nil, fmt.Errorf("reading tree entry hash: %w", err)
		}
		c.Tree[i] = TreeEntry{Name: name, Hash: hash}
	}

	if c.Parent, err = readString(buf); err != nil {
		return nil, fmt.Errorf("reading parent: %w", err)
	}
	if c.SecondParent, err = readString(buf); err != nil {
		return nil, fmt.Errorf("reading second parent: %w", err)
	}
	if c.Message, err = readString(buf); err != nil {
		return nil, fmt.Errorf("reading message: %w", err)
	}
	var nanos int64
	if err := binary.Read(buf, binary.LittleEndian, &nanos); err != nil {
		return nil, fmt.Errorf("reading timestamp: %w", err)
	}
	c.Timestamp = time.Unix(0, nanos).UTC()

	return c, nil
}

// header wraps the serialized body the way blob/commit objects traditionally
// carry a type+length prefix, so the stored bytes are self-describing.
func commitHeader(body []byte) []byte {
	return []byte(fmt.Sprintf("commit %d\x00", len(body)))
}

// encode returns the full on-disk content (header + body) and its fingerprint.
func (c *Commit) encode() (content []byte, fingerprint string) {
	body := c.serialize()
	var buf bytes.Buffer
	buf.Write(commitHeader(body))
	buf.Write(body)
	content = buf.Bytes()
	fingerprint = Fingerprint(content)
	return content, fingerprint
}

func decodeCommit(content []byte) (*Commit, error) {
	idx := bytes.IndexByte(content, '\x00')
	if idx == -1 {
		return nil, fmt.Errorf("invalid commit object: missing header")
	}
	header := string(content[:idx])
	body := content[idx+1:]
	if header != fmt.Sprintf("commit %d", len(body)) {
		return nil, fmt.Errorf("invalid commit header %q", header)
	}
	return deserializeCommit(body)
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	binary.Write(buf, binary.LittleEndian, v)
}

func readUint32(buf *bytes.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(buf, binary.LittleEndian, &v)
	return v, err
}

func writeString(buf *bytes.Buffer, s string) {
	b := []byte(s)
	writeUint32(buf, uint32(len(b)))
	buf.Write(b)
}

func readString(buf *bytes.Reader) (string, error) {
	n, err := readUint32(buf)
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if n > 0 {
		if _, err := buf.Read(b); err != nil {
			return "", err
		}
	}
	return string(b), nil
}
