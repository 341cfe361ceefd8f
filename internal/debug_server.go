package internal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	goruntime "runtime"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/process"

	"presence-hub/contract"
	"presence-hub/runtime"
)

// DebugServer exposes the store and process internals on a side port. It is
// a development tool, never mounted on the public listener.
type DebugServer struct {
	db       *badger.DB
	hub      *runtime.Hub
	presence contract.Presence
	log      *slog.Logger
}

func NewDebugServer(db *badger.DB, hub *runtime.Hub, presence contract.Presence, log *slog.Logger) *DebugServer {
	return &DebugServer{db: db, hub: hub, presence: presence, log: log}
}

// Start serves the debug endpoints in the background.
func (s *DebugServer) Start(port int) {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/store", s.dumpStore)
	mux.HandleFunc("/debug/stats", s.dumpStats)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%d", port)
		s.log.Info("Debug server listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			s.log.Warn("Debug server stopped", "err", err)
		}
	}()
}

// dumpStore renders every entry under a key prefix as a plain text table.
func (s *DebugServer) dumpStore(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = "msg:"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Size", "Preview"})

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			if err := item.Value(func(val []byte) error {
				table.Append([]string{string(item.Key()), strconv.Itoa(len(val)), preview(val)})
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	table.Render()
}

// dumpStats reports process level metrics: resident memory and CPU via the
// OS, plus in-process session and store gauges.
func (s *DebugServer) dumpStats(w http.ResponseWriter, r *http.Request) {
	stats := map[string]any{
		"goroutines": goruntime.NumGoroutine(),
		"sessions":   s.hub.Len(),
	}

	if users, err := s.presence.OnlineUsers(); err == nil {
		stats["online_users"] = len(users)
	}

	lsm, vlog := s.db.Size()
	stats["badger_lsm_bytes"] = lsm
	stats["badger_vlog_bytes"] = vlog

	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := p.MemoryInfo(); err == nil {
			stats["rss_bytes"] = mem.RSS
		}
		if cpu, err := p.CPUPercent(); err == nil {
			stats["cpu_percent"] = cpu
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		s.log.Warn("Could not encode stats", "err", err)
	}
}

func preview(val []byte) string {
	const max = 80
	if len(val) > max {
		return string(val[:max]) + "..."
	}
	return string(val)
}
