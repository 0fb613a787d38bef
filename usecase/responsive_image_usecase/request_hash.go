package responsive_image_usecase

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"dive-media/domain"

	"github.com/zeebo/blake3"
)

// RequestHash keys the result memo. It covers the identity (cache key, else
// source URL), width, height and, when present, breakpoints, formats and
// target path. Each field is tagged and length-prefixed so adjacent fields
// cannot run together.
func RequestHash(req *domain.ImageRequest) string {
	h := blake3.New()
	var lenBuf [binary.MaxVarintLen64]byte

	write := func(tag byte, value string) {
		_, _ = h.Write([]byte{tag})
		n := binary.PutUvarint(lenBuf[:], uint64(len(value)))
		_, _ = h.Write(lenBuf[:n])
		_, _ = h.WriteString(value)
	}

	identity := req.CacheKey
	if identity == "" {
		identity = req.SourceURL
	}
	write('k', identity)
	write('w', strconv.Itoa(req.Width))
	write('h', strconv.Itoa(req.Height))

	if len(req.Breakpoints) > 0 {
		parts := make([]string, len(req.Breakpoints))
		for i, bp := range req.Breakpoints {
			parts[i] = strconv.Itoa(bp)
		}
		write('b', strings.Join(parts, ","))
	}
	if len(req.Formats) > 0 {
		parts := make([]string, len(req.Formats))
		for i, f := range req.Formats {
			parts[i] = string(f)
		}
		write('f', strings.Join(parts, ","))
	}
	if req.TargetPath != "" {
		write('p', req.TargetPath)
	}

	return hex.EncodeToString(h.Sum(nil))
}
