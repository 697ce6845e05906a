package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ardhimaulana/go-foodorder/app/cmd"
	"github.com/ardhimaulana/go-foodorder/app/configs"
	"github.com/ardhimaulana/go-foodorder/app/routes"
)

func main() {

	env := configs.LoadEnv()

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Printf("Database connected (%s backend)", env.DBDriver)

	router := routes.NewRouter(db)

	server := http.Server{
		Addr:         env.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped:", err)
	}
}
