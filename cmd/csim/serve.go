package main

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/csim/datarecording"
	"github.com/sarchlab/csim/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve <database>",
	Short: "Serve recorded runs from a database as JSON over HTTP.",
	Args:  cobra.ExactArgs(1),
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0,
		"port to listen on (0 picks a free port)")
	serveCmd.Flags().Bool("open", false,
		"open the run listing in a browser")

	rootCmd.AddCommand(serveCmd)
}

type runServer struct {
	reader datarecording.DataReader
}

func runServe(cmd *cobra.Command, args []string) error {
	reader, err := datarecording.NewReader(args[0])
	if err != nil {
		return fmt.Errorf("cannot open database: %w", err)
	}
	defer reader.Close()

	reader.MapTable("cache_runs", tracing.RunEntry{})
	reader.MapTable("cache_accesses", tracing.AccessEntry{})

	s := &runServer{reader: reader}

	r := mux.NewRouter()
	r.HandleFunc("/api/runs", s.listRuns)
	r.HandleFunc("/api/runs/{id}/accesses", s.listAccesses)

	port, _ := cmd.Flags().GetInt("port")
	listener, err := net.Listen("tcp", ":"+strconv.Itoa(port))
	if err != nil {
		return err
	}

	url := fmt.Sprintf("http://localhost:%d/api/runs",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Serving recorded runs at %s\n", url)

	if open, _ := cmd.Flags().GetBool("open"); open {
		_ = browser.OpenURL(url)
	}

	return http.Serve(listener, r)
}

func (s *runServer) listRuns(w http.ResponseWriter, _ *http.Request) {
	runs, _, err := s.reader.Query("cache_runs", datarecording.QueryParams{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"runs": runs})
}

func (s *runServer) listAccesses(w http.ResponseWriter, r *http.Request) {
	runID := mux.Vars(r)["id"]

	params := datarecording.QueryParams{
		Where:   "RunID = ?",
		Args:    []any{runID},
		OrderBy: "Seq",
		Limit:   pageParam(r, "limit", 1000),
		Offset:  pageParam(r, "offset", 0),
	}

	accesses, total, err := s.reader.Query("cache_accesses", params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"total":    total,
		"accesses": accesses,
	})
}

func pageParam(r *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || value < 0 {
		return fallback
	}

	return value
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
