package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"watchlog/listing"
	"watchlog/scheduler"
	"watchlog/storage"
)

func main() {
	// Initialize storage paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "./data"
	}

	// Initialize logger with timestamp
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting Watchlog application...")

	// Initialize catalog cache
	cache := storage.NewCatalogCache(dataPath)
	if err := cache.Initialize(); err != nil {
		log.Fatalf("Failed to initialize catalog cache: %v", err)
	}
	defer cache.Close()

	// Initialize the annotation store
	store := storage.NewFileStore(dataPath)

	runMode := os.Getenv("RUN_MODE")

	if runMode == "scheduler" || runMode == "" {
		log.Println("Starting in scheduler mode")

		// Initialize scheduler
		sched := scheduler.NewScheduler()

		// Nightly store backup
		backupDir := filepath.Join(dataPath, "backups")
		backupJob := scheduler.NewBackupJob(store, backupDir, backupRetention())
		if err := sched.AddNightlyJob(backupJob); err != nil {
			log.Fatalf("Failed to schedule backup job: %v", err)
		}

		// Weekly library digest email
		digestJob := scheduler.NewDigestJob(store)
		if err := sched.AddWeeklyJob(digestJob); err != nil {
			log.Fatalf("Failed to schedule digest job: %v", err)
		}

		// Start the scheduler
		sched.Start()
		log.Println("Scheduler started. Backups run nightly at 2:00 AM, digests on Sundays at 9:00 AM")

		// Run a backup once at startup if specified
		if os.Getenv("RUN_AT_STARTUP") == "true" {
			log.Println("Running initial backup at startup")
			if err := sched.RunJobNow(backupJob.Name()); err != nil {
				log.Printf("Error running initial backup: %v", err)
			}
		}

		// Display library stats
		displayLibraryStats(store, cache)

		// Set up signal handling for graceful shutdown
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		log.Println("Application running. Press Ctrl+C to exit")

		// Wait for termination signal
		sig := <-quit
		log.Printf("Received signal %s, shutting down...", sig)

		// Gracefully stop the scheduler
		sched.Stop()

	} else if runMode == "once" {
		log.Println("Running in single execution mode")
		displayLibraryStats(store, cache)
	}

	log.Println("Application exiting")
}

// backupRetention reads the snapshot retention count from the environment
func backupRetention() int {
	retention := 7
	if v := os.Getenv("BACKUP_RETENTION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			retention = n
		} else {
			log.Printf("Invalid BACKUP_RETENTION '%s', using default %d", v, retention)
		}
	}
	return retention
}

// displayLibraryStats shows annotation store and catalog cache statistics
func displayLibraryStats(store *storage.FileStore, cache *storage.CatalogCache) {
	log.Println("Library Statistics")

	collection, err := store.Load()
	if err != nil {
		log.Printf("No annotation store loaded: %v", err)
	} else {
		log.Printf("Annotated movies: %d", len(collection.Movies))
		log.Printf("Annotated series: %d", len(collection.Series))

		// Show the top-rated titles from the unified list
		var entries []listing.Entry
		for _, um := range collection.Movies {
			entries = append(entries, listing.FromMovie(um.Movie))
		}
		for _, us := range collection.Series {
			entries = append(entries, listing.FromSeries(us.Series))
		}
		listing.Sort(entries, listing.OrderRatingDescending)

		limit := 5
		if len(entries) < limit {
			limit = len(entries)
		}

		log.Printf("Top rated (first %d):", limit)
		for i := 0; i < limit; i++ {
			entry := entries[i]
			log.Printf("- %s [%s] - %.1f", entry.Name, entry.Ref.Kind, entry.Rating)
		}
	}

	// Catalog cache stats
	stats, err := cache.GetStats()
	if err != nil {
		log.Printf("Error getting cache stats: %v", err)
		return
	}

	log.Printf("Cached records: %d (%d movies, %d series)",
		stats["total"], stats["movies"], stats["series"])
}
