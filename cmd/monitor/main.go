package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"mining-profit/pkg/domain"
	"mining-profit/pkg/domain/model"
	"mining-profit/pkg/domain/repository"
	"mining-profit/pkg/infrastructure/file"
	"mining-profit/pkg/infrastructure/memory"
	"mining-profit/pkg/infrastructure/rdb"

	"github.com/gorilla/mux"
)

func main() {
	configPath := flag.String("c", "", "settings file (toml)")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	logger := memory.Logger{Level: memory.Info}
	logger.Info("===== START PROGRAM ====================")
	defer logger.Info("===== END PROGRAM ======================")

	config, err := file.LoadConfig(*configPath, nil)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	if config.Output == "" {
		config.Output = "mph.json"
	}

	if config.DB.Driver == model.DriverSQLite && !filepath.IsAbs(config.DB.Path) {
		config.DB.Path = filepath.Join(config.WorkDir, config.DB.Path)
	}
	db, err := rdb.Open(&config.DB)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("report: %s", config.Output)
	logger.Info("listen: %s", *addr)
	if err := http.ListenAndServe(*addr, NewRouter(config.Output, db, &logger)); err != nil {
		logger.Error("error occured: %v", err)
	}
}

// NewRouter ルーティング
func NewRouter(reportPath string, txRepo repository.TransactionRepository, logger domain.Logger) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/report", reportHandler(reportPath)).Methods(http.MethodGet)
	r.HandleFunc("/api/coins/{coin}", coinHandler(reportPath)).Methods(http.MethodGet)
	r.HandleFunc("/api/transactions/{coin}", transactionsHandler(txRepo, logger)).Methods(http.MethodGet)
	return r
}

func reportHandler(reportPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := os.ReadFile(reportPath)
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func coinHandler(reportPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := model.NewReport(0, 0)
		if err := file.LoadJSON(reportPath, report); err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		name := mux.Vars(r)["coin"]
		coin, ok := report.Coins.Get(name)
		if !ok {
			writeJSON(w, http.StatusNotFound, Error{Error: "coin not found: " + name})
			return
		}
		writeJSON(w, http.StatusOK, coin)
	}
}

func transactionsHandler(txRepo repository.TransactionRepository, logger domain.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var since *time.Duration
		if s := r.URL.Query().Get("minute"); s != "" {
			minute, err := strconv.Atoi(s)
			if err != nil || minute < 0 {
				writeJSON(w, http.StatusBadRequest, Error{Error: "minute must be a non-negative integer"})
				return
			}
			d := time.Duration(minute) * time.Minute
			since = &d
		}

		tt, err := txRepo.GetTransactions(r.Context(), mux.Vars(r)["coin"], since)
		if err != nil {
			logger.Error("failed to get transactions: %v", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, Transactions{Transactions: tt})
	}
}

type Error struct {
	Error string `json:"error"`
}

type Transactions struct {
	Transactions []model.Transaction `json:"transactions"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, Error{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
