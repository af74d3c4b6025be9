package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/RyantheKing/owmidiconverter/constants"
	"github.com/RyantheKing/owmidiconverter/convert"
	"github.com/RyantheKing/owmidiconverter/db"
	"github.com/RyantheKing/owmidiconverter/model"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves conversion over http",
	Long:  `Serves conversion over http`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// settingsFromQuery reads startTime/voices query params. A missing or
// unparseable param falls back to that field's default; bounds are
// enforced later by ValidateSettings.
func settingsFromQuery(r *http.Request) model.Settings {
	settings := model.DefaultSettings()
	if v := r.URL.Query().Get("startTime"); v != "" {
		if startTime, err := strconv.ParseFloat(v, 64); err == nil {
			settings.StartTime = startTime
		}
	}
	if v := r.URL.Query().Get("voices"); v != "" {
		if voices, err := strconv.Atoi(v); err == nil {
			settings.Voices = voices
		}
	}
	return settings
}

// HandleConvert accepts a raw midi file body and responds with the
// conversion result. Pipeline-level problems ride back inside the result's
// warning/error lists, only malformed requests get a 4xx.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		writeError(w, http.StatusBadRequest, "request body must be a midi file")
		return
	}

	tmp := filepath.Join(os.TempDir(), uuid.New().String()+".mid")
	if err := os.WriteFile(tmp, body, 0666); err != nil {
		writeError(w, http.StatusInternalServerError, "could not stage midi file")
		return
	}
	defer os.Remove(tmp)

	result, err := convert.File(tmp, settingsFromQuery(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := model.ConvertResponse{Result: result}
	if filename := r.URL.Query().Get("filename"); filename != "" {
		if metadatas, err := db.GetSongMetadatas([]string{filename}); err == nil {
			if m, ok := metadatas[filename]; ok {
				resp.Metadata = &m
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "ok")
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := cors.Default().Handler(router)
	fmt.Printf("listening on :%v (budget %v elements)\n", port, constants.ElementBudget)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
