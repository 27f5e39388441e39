package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/agenthands/newsguard/internal/classifier"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/agenthands/newsguard/docs"
)

// @title       newsguard API
// @version     1.0
// @description Fake-news classification backed by a fine-tuned BERT model
// @BasePath    /

type Server struct {
	Classifier *classifier.Service
	Log        *zap.Logger
	Docs       bool
}

func NewServer(svc *classifier.Service, log *zap.Logger, docs bool) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		Classifier: svc,
		Log:        log,
		Docs:       docs,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()

	r.Use(requestID(), accessLog(s.Log), recovery(s.Log))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders:   []string{"Content-Length", requestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/health", s.Health)
	r.POST("/api/bert_predict", s.BertPredict)

	if s.Docs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

type PredictRequest struct {
	Text string `json:"text" example:"Scientists confirm water boils at 100 degrees Celsius at sea level."`
}

type ErrorResponse struct {
	Error string `json:"error" example:"No text provided"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"OK"`
	Service string `json:"service" example:"newsguard"`
	Backend string `json:"backend" example:"hugot/go-cpu"`
}

// BertPredict classifies the submitted article.
//
// @Summary     Classify news text
// @Description Classify a news article as Real or Fake with the fine-tuned BERT model
// @Tags        classify
// @Accept      json
// @Produce     json
// @Param       request body     PredictRequest true "Article text"
// @Success     200     {object} classifier.Result
// @Failure     400     {object} ErrorResponse
// @Failure     500     {object} ErrorResponse
// @Router      /api/bert_predict [post]
func (s *Server) BertPredict(c *gin.Context) {
	text, err := readText(c)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	res, err := s.Classifier.Classify(c.Request.Context(), text)
	if errors.Is(err, classifier.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No text provided"})
		return
	}
	if err != nil {
		s.Log.Error("Failed to classify text",
			zap.Error(err),
			zap.String("request_id", c.GetString(requestIDHeader)),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to classify text"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// readText returns the "text" member of the request body. Only the exact key is
// read, and the whole body must be one JSON value. A missing or null member
// yields "".
func readText(c *gin.Context) (string, error) {
	body, err := c.GetRawData()
	if err != nil {
		return "", err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", err
	}

	raw, ok := fields["text"]
	if !ok {
		return "", nil
	}
	var text *string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", err
	}
	if text == nil {
		return "", nil
	}
	return *text, nil
}

// Health reports liveness and which backend serves predictions.
//
// @Summary Service health
// @Tags    health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router  /health [get]
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "OK",
		Service: "newsguard",
		Backend: s.Classifier.Backend(),
	})
}
