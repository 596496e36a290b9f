// Package textvec 提供了基于词频的轻量文本向量化能力。
// 不依赖任何外部 embedding 模型，检索相似度完全由稀疏词频向量计算。
package textvec

import (
	"math"
	"regexp"
	"strings"
)

// DefaultChunkSize 是文本分块的默认词数上限。
const DefaultChunkSize = 70

// Vector 是稀疏词频向量，key 为词项，value 为出现次数。
type Vector map[string]int

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)

// Tokenize 将文本转为小写、去除非字母数字字符后按空白切分。
// 纯函数，输入相同输出一定相同。
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	cleaned := nonAlnum.ReplaceAllString(lower, " ")
	return strings.Fields(cleaned)
}

// BuildVector 根据 Tokenize 的结果构建词频向量。
func BuildVector(text string) Vector {
	tokens := Tokenize(text)
	vec := make(Vector, len(tokens))
	for _, token := range tokens {
		vec[token]++
	}
	return vec
}

// CosineSimilarity 计算两个词频向量的余弦相似度，返回值范围 [0, 1]。
// 任一向量模长为 0 时返回 0，不报错。
func CosineSimilarity(a, b Vector) float64 {
	var dot float64
	for token, count := range a {
		if other, ok := b[token]; ok {
			dot += float64(count) * float64(other)
		}
	}
	denom := magnitude(a) * magnitude(b)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

func magnitude(v Vector) float64 {
	var sum float64
	for _, count := range v {
		sum += float64(count) * float64(count)
	}
	return math.Sqrt(sum)
}

// ChunkText 将文本按 chunkSize 个词为一组切分，组内用单个空格重新拼接。
// 若分词结果为空（例如纯标点输入），返回包含原始文本的单个分块，保证内容不丢失。
func ChunkText(text string, chunkSize int) []string {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	words := Tokenize(text)
	var chunks []string
	for i := 0; i < len(words); i += chunkSize {
		end := i + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	if len(chunks) == 0 {
		chunks = append(chunks, text)
	}
	return chunks
}
