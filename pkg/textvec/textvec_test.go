package textvec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, Tokenize("Hello, World!"))
	assert.Equal(t, []string{"a1", "b2"}, Tokenize("  A1\t b2 \n"))
	assert.Empty(t, Tokenize("!!! ??? ..."))
	assert.Empty(t, Tokenize(""))
}

func TestBuildVector(t *testing.T) {
	vec := BuildVector("data data protection Data")
	assert.Equal(t, Vector{"data": 3, "protection": 1}, vec)
}

func TestCosineSimilarity(t *testing.T) {
	v := BuildVector("incident response plan incident")

	// 自身相似度为 1
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)

	// 空向量或无交集时严格为 0
	assert.Zero(t, CosineSimilarity(v, Vector{}))
	assert.Zero(t, CosineSimilarity(Vector{}, v))
	assert.Zero(t, CosineSimilarity(v, BuildVector("privacy retention")))

	// 相似度落在 [0,1] 区间
	partial := CosineSimilarity(v, BuildVector("incident handling"))
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 1.0)
}

func TestChunkText(t *testing.T) {
	long := strings.Repeat("word ", 150)
	chunks := ChunkText(long, 70)
	require.Len(t, chunks, 3)
	assert.Len(t, strings.Fields(chunks[0]), 70)
	assert.Len(t, strings.Fields(chunks[1]), 70)
	assert.Len(t, strings.Fields(chunks[2]), 10)

	// 分块内部用单空格重连
	assert.NotContains(t, chunks[0], "  ")
}

func TestChunkTextFallback(t *testing.T) {
	// 纯标点或空白输入不能丢内容，必须返回单个包含原文的分块
	for _, input := range []string{"", "   ", "!!!###"} {
		chunks := ChunkText(input, 70)
		require.Len(t, chunks, 1)
		assert.Equal(t, input, chunks[0])
	}
}
