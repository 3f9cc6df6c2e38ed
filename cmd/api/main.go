package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	configapi "student_portfolio/pkg/api/config"
	reportapi "student_portfolio/pkg/api/report"
	"student_portfolio/pkg/core/agent"
	"student_portfolio/pkg/core/prompt"
	"student_portfolio/pkg/core/store"
)

func main() {
	godotenv.Load()

	// Prompt library: blueprint templates loaded from resources/, with
	// hardcoded fallbacks if the directory is missing.
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
		fmt.Println("  Falling back to hardcoded prompts")
	} else {
		fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", prompt.Get().Count(), resourcesPath)
	}

	// Provider routing from config/models.yaml; zero config means OpenAI.
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr := agent.NewManager(agentCfg)

	// Report history is optional: without DATABASE_URL the endpoints run
	// with history disabled.
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database unavailable, history disabled: %v\n", err)
		}
		defer store.Close()
	}

	reportapi.InitHandler(agentMgr)
	http.HandleFunc("/generate-report", reportapi.HandleGenerateReport)
	http.HandleFunc("/download/", reportapi.HandleDownload)
	http.HandleFunc("/api/report/history", reportapi.HandleHistory)
	http.HandleFunc("/api/report/preview", reportapi.HandlePreview)

	configHandler := configapi.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /generate-report")
	fmt.Println("  - GET  /download/<filename>")
	fmt.Println("  - GET  /api/report/history")
	fmt.Println("  - POST /api/report/preview")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
