package router

import (
	"kost_market/constants"
	"kost_market/handler"
	"kost_market/helper"
	"kost_market/middleware"
	"kost_market/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	cld := helper.InitCloudinary()
	withCloudinary := func(c *fiber.Ctx) error {
		c.Locals("cld", cld)
		return c.Next()
	}

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.RegisterUser(), handler.RegisterUser)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Put("/me", middleware.Protected(), validate.EditProfile(), handler.EditProfile)
	account.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	account.Post("/avatar", middleware.Protected(), withCloudinary, handler.UploadAvatar)

	// Owner console
	kost := v1.Group("/kost", logger.New())
	kost.Get("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_OWNER, constants.ROLE_ADMIN), handler.GetMyProperties)
	kost.Post("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_OWNER, constants.ROLE_ADMIN), validate.CreateProperty(), handler.CreateProperty)
	kost.Put("/:propertyId", middleware.Protected(), middleware.RequireRole(constants.ROLE_OWNER, constants.ROLE_ADMIN), validate.EditProperty("propertyId"), handler.EditProperty)
	kost.Delete("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_OWNER, constants.ROLE_ADMIN), validate.Delete(), handler.DeleteProperty)
	kost.Patch("/:id/publish", middleware.Protected(), middleware.RequireRole(constants.ROLE_OWNER, constants.ROLE_ADMIN), validate.GetById("id"), handler.PublishProperty)
	kost.Patch("/:id/unpublish", middleware.Protected(), middleware.RequireRole(constants.ROLE_OWNER, constants.ROLE_ADMIN), validate.GetById("id"), handler.UnpublishProperty)
	kost.Post("/:id/photos", middleware.Protected(), withCloudinary, handler.UploadPropertyPhotos)
	kost.Get("/:id/rooms", middleware.Protected(), validate.GetById("id"), handler.GetRoomTypesByProperty)
	kost.Post("/:id/rooms", middleware.Protected(), middleware.RequireRole(constants.ROLE_OWNER, constants.ROLE_ADMIN), validate.CreateRoomType(), handler.CreateRoomType)
	kost.Put("/rooms/:roomTypeId", middleware.Protected(), middleware.RequireRole(constants.ROLE_OWNER, constants.ROLE_ADMIN), validate.EditRoomType("roomTypeId"), handler.EditRoomType)
	kost.Delete("/rooms", middleware.Protected(), middleware.RequireRole(constants.ROLE_OWNER, constants.ROLE_ADMIN), validate.Delete(), handler.DeleteRoomType)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	// Public browse
	listings := v1.Group("/listings")
	listings.Get("/", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetListings)
	listings.Get("/search", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.SearchListings)
	listings.Get("/cities", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetListingCities)
	listings.Get("/types", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetListingTypes)
	listings.Get("/:slug", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetPropertyDetail)
	listings.Get("/:slug/qr", handler.GetPropertyQR)

	favorites := v1.Group("/favorites", logger.New())
	favorites.Get("/", middleware.Protected(), handler.GetMyFavorites)
	favorites.Post("/toggle", middleware.Protected(), handler.ToggleFavorite)

	chat := v1.Group("/chat", logger.New())
	chat.Post("/", middleware.Protected(), validate.OpenConversation(), handler.OpenConversation)
	chat.Get("/", middleware.Protected(), handler.GetMyConversations)
	chat.Get("/unread", middleware.Protected(), handler.GetUnreadTotal)
	chat.Get("/:code/messages", middleware.Protected(), handler.GetMessages)
	chat.Post("/:code/messages", middleware.Protected(), validate.SendMessage(), handler.SendMessage)
	chat.Post("/:code/read", middleware.Protected(), handler.MarkConversationRead)
	chat.Get("/:code/ws", websocket.New(handler.ConversationWebsocket))

	settings := v1.Group("/settings", logger.New())
	settings.Get("/notifications", middleware.Protected(), handler.GetNotificationSettings)
	settings.Put("/notifications", middleware.Protected(), validate.EditNotificationSetting(), handler.UpdateNotificationSettings)
}
