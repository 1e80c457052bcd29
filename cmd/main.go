package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"TsuriSpot-App/internal/domain/service"
	"TsuriSpot-App/internal/handler"
	"TsuriSpot-App/internal/infrastructure/database"
	fsinfra "TsuriSpot-App/internal/infrastructure/firestore"
	"TsuriSpot-App/internal/infrastructure/geolocation"
	domainRepo "TsuriSpot-App/internal/domain/repository"
	repoImpl "TsuriSpot-App/internal/repository"
	"TsuriSpot-App/internal/usecase"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	// スポットのデータソースを選択（Supabase → PostgreSQL → Firestore → 組み込みデータ）
	spotsRepo := selectSpotsRepository(ctx)

	// スポットは起動時に一度だけ読み込み、以降エンジンは変更しない
	spots, err := spotsRepo.GetAll(ctx)
	if err != nil {
		log.Fatalf("スポットデータの読み込み失敗: %v", err)
	}
	log.Printf("✅ %d件のスポットを読み込みました", len(spots))

	pageSize := service.DefaultPageSize
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}

	searchService := service.NewSpotSearchService()
	searchUseCase := usecase.NewSpotSearchUseCase(spotsRepo, searchService, pageSize)

	// IPベースの位置情報プロバイダー（省電力・低精度の方針で利用する）
	var locationProvider domainRepo.LocationProvider
	if os.Getenv("DISABLE_GEOLOCATION") == "" {
		locationProvider = geolocation.NewIPAPIProvider()
	} else {
		log.Println("⚠️ 位置情報プロバイダーは無効化されています（距離ソートは利用不可）")
	}
	session := usecase.NewDiscoverySessionUseCase(spots, searchService, locationProvider, pageSize)

	spotsHandler := handler.NewSpotsHandler(searchUseCase)
	discoveryHandler := handler.NewDiscoveryHandler(session)

	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "TsuriSpot-App"})
	})

	r.GET("/spots", spotsHandler.SearchSpots)
	r.GET("/spots/in-bounds", spotsHandler.GetSpotsInBounds)
	r.GET("/spots/:id", spotsHandler.GetSpotDetail)

	r.GET("/discovery/results", discoveryHandler.GetResults)
	r.PATCH("/discovery/query", discoveryHandler.UpdateQuery)
	r.PUT("/discovery/page/:page", discoveryHandler.SetPage)
	r.POST("/discovery/location", discoveryHandler.RequestLocation)
	r.POST("/discovery/clear", discoveryHandler.ClearFilters)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("TsuriSpot-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}

// selectSpotsRepository 環境変数に応じてスポットのデータソースを選択する
func selectSpotsRepository(ctx context.Context) domainRepo.SpotsRepository {
	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "" {
		client, err := database.NewSupabaseClient()
		if err != nil {
			log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
		}
		if err := client.HealthCheck(); err != nil {
			log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
		}
		log.Println("✅ データソース: Supabase")
		return repoImpl.NewSupabaseSpotsRepository(client)
	}

	if os.Getenv("DATABASE_URL") != "" {
		client, err := database.NewPostgreSQLClient()
		if err != nil {
			log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
		}
		log.Println("✅ データソース: PostgreSQL")
		return repoImpl.NewPostgresSpotsRepository(client)
	}

	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		client, err := fsinfra.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
		}
		log.Println("✅ データソース: Firestore")
		return repoImpl.NewFirestoreSpotsRepository(client.GetClient())
	}

	fmt.Println("⚠️  データソースの環境変数が設定されていません:")
	fmt.Println("SUPABASE_URL / DATABASE_URL / FIRESTORE_PROJECT_ID のいずれかを設定すると外部データを利用できます")
	fmt.Println("組み込みのサンプルデータで起動します")
	return repoImpl.NewInMemorySpotsRepository(repoImpl.DefaultSpots())
}
