package packager

import (
	"bytes"
	"encoding/binary"
	"sync"
	"testing"

	"github.com/moffa90/go-iplpack/dol"
)

// buildDOL returns a DOL file with a single text segment.
func buildDOL(entry, addr uint32, data []byte) []byte {
	var h dol.Header
	h.Entry = entry
	h.Offsets[0] = dol.HeaderSize
	h.Addresses[0] = addr
	h.Sizes[0] = uint32(len(data))

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, &h)
	buf.Write(data)
	return buf.Bytes()
}

func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// fixedSource returns a source linked for the fixed loader address.
func fixedSource(t *testing.T, data []byte) *Source {
	t.Helper()
	src, err := LoadSource("gekkoboot.dol", buildDOL(0x81300000, 0x81300000, data))
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	return src
}

type logEntry struct {
	level string
	msg   string
	kv    []interface{}
}

// recordingLogger captures log calls for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) add(level, msg string, kv []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, kv: kv})
}

func (l *recordingLogger) Debug(msg string, kv ...interface{}) { l.add("debug", msg, kv) }
func (l *recordingLogger) Info(msg string, kv ...interface{})  { l.add("info", msg, kv) }
func (l *recordingLogger) Error(msg string, kv ...interface{}) { l.add("error", msg, kv) }

func (l *recordingLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.level == level && e.msg == msg {
			return true
		}
	}
	return false
}

// buildELF returns a big-endian ELF32 executable with one PT_LOAD segment.
func buildELF(entry, vaddr uint32, data []byte) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x7F, 'E', 'L', 'F', 1, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	be := func(v interface{}) { _ = binary.Write(&buf, binary.BigEndian, v) }
	be(uint16(2))  // ET_EXEC
	be(uint16(20)) // EM_PPC
	be(uint32(1))
	be(entry)
	be(uint32(52)) // phoff
	be(uint32(0))  // shoff
	be(uint32(0))  // flags
	be(uint16(52))
	be(uint16(32))
	be(uint16(1))
	be(uint16(40))
	be(uint16(0))
	be(uint16(0))

	be(uint32(1)) // PT_LOAD
	be(uint32(52 + 32))
	be(vaddr)
	be(vaddr)
	be(uint32(len(data)))
	be(uint32(len(data)))
	be(uint32(5))
	be(uint32(4))

	buf.Write(data)
	return buf.Bytes()
}
