// Seed program: loads sample student records into an in-memory index,
// exercises lookups, deletes and a range scan, then validates the tree.
// Run: go run ./cmd/seed [-order N]
package main

import (
	bplus "BPlusIndex/bplustree"
	lookupcache "BPlusIndex/lookup_cache"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"
)

type student struct {
	id    string
	name  string
	grade string
}

var students = []student{
	{"S001", "Alice Johnson", "A"},
	{"S002", "Bob Smith", "B"},
	{"S003", "Charlie Brown", "A"},
	{"S004", "Diana Prince", "C"},
	{"S005", "Eve Wilson", "B"},
	{"S006", "Frank Castle", "B"},
	{"S007", "Grace Hopper", "A"},
	{"S008", "Heidi Klum", "C"},
	{"S009", "Ivan Petrov", "B"},
	{"S010", "Judy Hopps", "A"},
}

func main() {
	order := flag.Int("order", 3, "maximum keys per node")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	index, err := lookupcache.New[string, string](bplus.Config{Order: *order}, lookupcache.DefaultConfig(), logger)
	if err != nil {
		logger.Fatal("create index", zap.Error(err))
	}
	defer index.Close()
	tree := index.Tree()

	// Create a simple record: "name|grade"
	for _, s := range students {
		index.Insert(s.id, s.name+"|"+s.grade)
	}
	logger.Info("seeded", zap.Int("students", len(students)), zap.Int("height", tree.Height()))

	for _, id := range []string{"S001", "S003", "S999"} {
		if rec, ok := index.Search(id); ok {
			fmt.Printf("Found %s: %s\n", id, rec)
		} else {
			fmt.Printf("Student %s not found\n", id)
		}
	}

	for _, id := range []string{"S002", "S004", "S006"} {
		index.Delete(id)
	}

	fmt.Println("\n=== S003..S008 ===")
	for _, e := range index.Range("S003", "S008") {
		fmt.Printf("%s -> %s\n", e.Key, e.Value)
	}

	if err := tree.Validate(); err != nil {
		logger.Fatal("tree invalid", zap.Error(err))
	}

	s := tree.Stats()
	logger.Info("index stats",
		zap.Int("order", s.Order),
		zap.Int("height", s.Height),
		zap.Int("size", s.Size),
		zap.Int("leaves", s.LeafNodes),
		zap.Int("internal", s.InternalNodes),
		zap.Int("free_slots", s.FreeSlots))
}
