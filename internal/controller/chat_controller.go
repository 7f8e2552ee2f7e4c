package controller

import (
	"policy-rag-be/internal/constant"
	"policy-rag-be/internal/dto"
	"policy-rag-be/internal/pkg/serverutils"
	"policy-rag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const serviceVersion = "1.0.0"

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	Root(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService  service.IChatService
	indexService service.IIndexStatusService
}

func NewChatController(chatService service.IChatService, indexService service.IIndexStatusService) IChatController {
	return &chatController{
		chatService:  chatService,
		indexService: indexService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/health", c.Health)
	r.Post("/chat", c.Chat)
}

func (c *chatController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.RootResponse{
		Message: "Youth Policy RAG Server",
		Version: serviceVersion,
		Health:  "/health",
	})
}

// Chat always answers HTTP 200; pipeline failures surface as fixed strings
// in the response body, never as status codes.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	if !c.indexService.RagEnabled() {
		return ctx.JSON(dto.ChatResponse{Response: constant.RagDisabledResponse})
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.chatService.Answer(ctx.Context(), &req)
	return ctx.JSON(res)
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:          "healthy",
		VectorstoreDocs: c.indexService.DocumentCount(ctx.Context()),
		ActiveSessions:  c.chatService.ActiveSessions(),
		RagEnabled:      c.indexService.RagEnabled(),
	})
}
