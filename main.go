package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "survivors.db", "SQLite database path")
	tuningPath := flag.String("tuning", "tuning.yaml", "balance tuning file (optional)")
	clientDir := flag.String("client", "", "path to client directory (optional)")
	flag.Parse()

	db, err := OpenDB(*dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	tun, err := LoadTuning(*tuningPath)
	if err != nil {
		log.Printf("tuning load failed, using defaults: %v", err)
	}
	tuning := NewTuningStore(tun)
	if _, err := os.Stat(*tuningPath); err == nil {
		stopWatch, err := WatchTuning(*tuningPath, tuning)
		if err != nil {
			log.Printf("tuning watch disabled: %v", err)
		} else {
			defer stopWatch()
			log.Printf("watching %s for tuning changes", *tuningPath)
		}
	}

	hub := NewHub(db, tuning)
	go hub.Run()

	mux := SetupRoutes(hub, *clientDir)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		log.Printf("Server starting on %s", *addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down...")
	hub.analytics.Stop()
	server.Close()
}
