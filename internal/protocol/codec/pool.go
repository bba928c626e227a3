package codec

import "sync"

const defaultBufferSize = 128

// Buffer pool for move encoding
var bufferPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, defaultBufferSize)
		return &b
	},
}

// GetBuffer retrieves an empty byte buffer from the pool
func GetBuffer() *[]byte {
	return bufferPool.Get().(*[]byte)
}

// PutBuffer returns a buffer to the pool
// The buffer is truncated so the next user starts empty
func PutBuffer(b *[]byte) {
	if b == nil {
		return
	}
	*b = (*b)[:0]
	bufferPool.Put(b)
}
