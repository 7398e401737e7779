package main

import (
	"fmt"
	"os"
	"strconv"

	"longform-tts-worker/application/services"
	"longform-tts-worker/config"
	"longform-tts-worker/infrastructure/adapters"
	"longform-tts-worker/infrastructure/gin_interface/controllers"
	"longform-tts-worker/middleware"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	maxSegmentChars := services.DefaultMaxSegmentChars
	if raw := os.Getenv("MAX_SEGMENT_CHARS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to parse max segment chars")
		}
		maxSegmentChars = parsed
	}

	openAIConfig, err := config.GetOpenAIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get openai config")
	}

	storageConfig, err := config.GetStorageConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get storage config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	authConfig, err := config.NewWorkerAuthConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get worker auth config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)
	synthesizer := adapters.NewOpenAISynthesizer(contentFetcher, openAIConfig)
	artifactStore := adapters.NewS3ArtifactStore(s3Client, storageConfig)
	jobStore := adapters.NewDynamoJobStore(zeroLogger, dynamoClient, dynamoConfig)
	storyStore := adapters.NewDynamoStoryStore(zeroLogger, dynamoClient, dynamoConfig)

	segmenter := services.NewTextSegmenter(maxSegmentChars)
	pipeline := services.NewAudioPipelineOrchestrator(zeroLogger, segmenter, synthesizer, artifactStore, storyStore, storageConfig.KeyPrefix)
	jobTracker := services.NewJobTracker(zeroLogger, jobStore)

	ttsController := controllers.NewTtsController(zeroLogger, workerPool, pipeline, jobTracker)
	jobsController := controllers.NewJobsController(zeroLogger, jobTracker)

	router := gin.Default()
	router.HandleMethodNotAllowed = true

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	authHandler := middleware.NewAuthHandler(authConfig.SharedSecret)
	router.Use(authHandler.AuthMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	ttsController.RegisterRoutes(router)
	jobsController.RegisterRoutes(router)

	err = router.Run(":8080")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
