package file

import (
	"path/filepath"
	"strings"

	"github.com/RyantheKing/owmidiconverter/constants"
	"github.com/RyantheKing/owmidiconverter/model"
)

// OutputPath derives the rules filename for a converted midi path. Outputs
// land next to the input unless OUT_PATH points somewhere else.
func OutputPath(midiPath string) string {
	ext := filepath.Ext(midiPath)
	name := strings.TrimSuffix(filepath.Base(midiPath), ext) + ".ow.txt"
	dir := constants.GetOutDir()
	if dir == "." {
		dir = filepath.Dir(midiPath)
	}
	return filepath.Join(dir, name)
}

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}
