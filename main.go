package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/routes"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

const maxUploadBytes = 16 << 20 // aggregate multipart cap per request

func main() {
	log.Println("✅ Starting Nexso storefront...")

	// Load environment variables
	_ = godotenv.Load()

	dataFile := envOr("DATA_FILE", "data.json")
	ordersFile := envOr("ORDERS_FILE", "orders.json")
	imgBase := envOr("IMG_BASE", filepath.Join("static", "imagenes"))
	audioDir := envOr("AUDIO_DIR", filepath.Join("static", "audio"))

	// Directories the site expects, including the two seed category galleries
	for _, dir := range []string{imgBase, audioDir, filepath.Join(imgBase, "Tecnologia"), filepath.Join(imgBase, "Diseno")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("❌ Failed to create %s: %v", dir, err)
		}
	}

	st, err := store.Open(dataFile, ordersFile)
	if err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}

	// Claim loose gallery files as placeholder products
	if created, err := st.ReconcileUntrackedImages(imgBase); err != nil {
		log.Fatalf("❌ Failed to reconcile untracked images: %v", err)
	} else if created > 0 {
		log.Printf("✅ Registered %d untracked image(s) as placeholder products", created)
	}

	// Gin setup
	r := gin.Default()
	r.MaxMultipartMemory = maxUploadBytes

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Session cookie carries the cart and the admin login
	secret := envOr("SESSION_SECRET", "cambia_esta_clave_por_otra_muy_segura")
	r.Use(sessions.Sessions("nexso_session", cookie.NewStore([]byte(secret))))

	// Serve gallery images and the welcome audio verbatim
	r.Static("/static/imagenes", imgBase)
	r.Static("/static/audio", audioDir)

	routes.Setup(r, st, imgBase)

	port := envOr("PORT", "5000")
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
