package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/RyantheKing/owmidiconverter/chord"
	"github.com/RyantheKing/owmidiconverter/constants"
	"github.com/RyantheKing/owmidiconverter/workshop"
)

func init() {
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Previews held chords from a midi input",
	Long:  `Listens on midi input port 0 and prints the Workshop pitch array for whatever is held.`,
	Run: func(cmd *cobra.Command, args []string) {
		startLive()
	},
}

// snapshotPitches maps the held keys into the stored pitch space, capped at
// the default voice count the same way the aggregator caps a chord.
func snapshotPitches(onNotes map[uint8]bool) []int {
	var pitches []int
	for key := range onNotes {
		normalized, _ := chord.NormalizePitch(int(key))
		pitches = append(pitches, normalized-constants.MinPitch)
	}
	sort.Ints(pitches)
	if len(pitches) > constants.DefaultVoices {
		pitches = pitches[:constants.DefaultVoices]
	}
	return pitches
}

func printChord(pitches []int) {
	if len(pitches) == 0 {
		fmt.Println("(silence)")
		return
	}
	vals := make([]string, 0, len(pitches))
	for _, p := range pitches {
		vals = append(vals, fmt.Sprintf("%v", p))
	}
	fmt.Printf("Global.%v[0] = %v;\n", workshop.PitchesVar, workshop.ArrayLiteral(vals))
}

func startLive() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	onNotes := make(map[uint8]bool)
	debounced := debounce.New(50 * time.Millisecond)

	// snapshot inside the listen callback; the debounced render runs on
	// another goroutine and must not touch onNotes
	render := func() {
		pitches := snapshotPitches(onNotes)
		debounced(func() { printChord(pitches) })
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			onNotes[key] = true
			render()
		case msg.GetNoteEnd(&ch, &key):
			delete(onNotes, key)
			render()
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	select {}
}
