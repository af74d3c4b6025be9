package util

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/RyantheKing/owmidiconverter/constants"
	"golang.org/x/exp/constraints"
)

var timeScale = math.Pow(10, constants.TimePrecision)

// RoundTime quantizes an onset time to the shared decimal precision. Every
// stage that compares, stores or renders a time goes through this one
// function so float jitter can't produce duplicate or misordered chord keys.
func RoundTime(t float64) float64 {
	return math.Round(t*timeScale) / timeScale
}

// FormatTime renders a rounded time without trailing zeros.
func FormatTime(t float64) string {
	return strconv.FormatFloat(RoundTime(t), 'f', -1, 64)
}

func GatherAllMidiPaths(path string, maxNum int) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	filepath.WalkDir(path, walk)
	return res
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Chunk splits vals into consecutive pieces of at most size elements. The
// last piece may be shorter; nil input yields no pieces.
func Chunk[A any](vals []A, size int) [][]A {
	var res [][]A
	for start := 0; start < len(vals); start += size {
		end := Min(start+size, len(vals))
		res = append(res, vals[start:end])
	}
	return res
}

func OpenFileOrPanic(path string) *os.File {
	f, err := os.Open(path)
	if err != nil {
		panic("Couldn't read file: " + err.Error())
	}
	return f
}

func WriteFileOrPanic(path string, text string) {
	err := os.WriteFile(path, []byte(text), 0666)
	if err != nil {
		panic("Write failed for file " + path + ": " + err.Error())
	}
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
