package main

import (
	"log"

	"flag"

	"github.com/gridbase/gridbase-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", false, "Run server")
	shouldRunWorker := flag.Bool("worker", false, "Run task queue worker")
	shouldRunScheduler := flag.Bool("scheduler", false, "Run cron job scheduler")
	flag.Parse()

	run := func(name string, fn func() error) {
		if err := fn(); err != nil {
			log.Fatalf("%s failed: %v", name, err)
		}
	}

	if *shouldRunMigrations {
		run("migrations", cmd.RunMigrations)
	}
	if *shouldRunServer {
		run("server", cmd.RunServer)
	}
	if *shouldRunWorker {
		run("worker", cmd.RunTaskQueue)
	}
	if *shouldRunScheduler {
		run("scheduler", cmd.RunJobScheduler)
	}
}
