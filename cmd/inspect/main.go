// inspect dumps a key prefix of the store as a table. It opens the database
// read-only and bypasses the lock guard, so it works against a live server.
package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"presence-hub/internal"
)

func main() {
	prefix := flag.String("prefix", "msg:", "key prefix to dump")
	limit := flag.Int("limit", 100, "maximum rows to print")
	flag.Parse()

	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Size", "Value"})

	rows := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(*prefix)); it.ValidForPrefix([]byte(*prefix)) && rows < *limit; it.Next() {
			item := it.Item()
			if err := item.Value(func(val []byte) error {
				table.Append([]string{string(item.Key()), strconv.Itoa(len(val)), truncate(string(val))})
				return nil
			}); err != nil {
				return err
			}
			rows++
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to read store: %v", err)
	}

	table.Render()
}

func truncate(s string) string {
	const max = 96
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
