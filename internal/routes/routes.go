package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/goodgifts/goodgifts-backend/internal/handler"
)

// Handlers bundles everything route registration needs
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Friend   *handler.FriendHandler
	Wishlist *handler.WishlistHandler
	Item     *handler.ItemHandler
	Gift     *handler.GiftHandler
}

// Register mounts the API under /goodgifts. Everything except signup
// and login sits behind the auth gate.
func Register(r *gin.Engine, h Handlers, authGuard gin.HandlerFunc) {
	root := r.Group("/goodgifts")

	auth := root.Group("/auth")
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", authGuard, h.Auth.Logout)

	users := root.Group("/users", authGuard)
	users.GET("/getId", h.User.GetID)
	users.GET("/profile", h.User.GetProfile)
	users.PATCH("/profile/update", h.User.UpdateProfile)
	users.PATCH("/profile/changePassword", h.User.ChangePassword)
	users.DELETE("/profile/delete", h.User.DeleteProfile)

	friends := root.Group("/friends", authGuard)
	friends.GET("/getAll", h.Friend.GetAll)
	friends.GET("/check", h.Friend.Check)
	friends.POST("/add", h.Friend.Add)
	friends.DELETE("/delete", h.Friend.Delete)
	friends.GET("/requests", h.Friend.Requests)
	friends.POST("/requests/accept", h.Friend.AcceptRequest)
	friends.DELETE("/requests/reject", h.Friend.RejectRequest)

	wishlists := root.Group("/wishlists", authGuard)
	wishlists.GET("/getAll", h.Wishlist.GetAll)
	wishlists.GET("/get", h.Wishlist.Get)
	wishlists.POST("/create", h.Wishlist.Create)
	wishlists.DELETE("/delete", h.Wishlist.Delete)
	wishlists.PATCH("/edit", h.Wishlist.Edit)

	items := root.Group("/items", authGuard)
	items.GET("/getAll", h.Item.GetAll)
	items.GET("/get", h.Item.Get)
	items.POST("/create", h.Item.Create)
	items.PATCH("/edit", h.Item.Edit)
	items.DELETE("/delete", h.Item.Delete)
	items.POST("/addToWishlist", h.Item.AddToWishlist)
	items.DELETE("/deleteFromWishlist", h.Item.DeleteFromWishlist)

	gifts := root.Group("/gifts", authGuard)
	gifts.GET("/getAll", h.Gift.GetAll)
	gifts.GET("/get", h.Gift.Get)
	// historical route name, kept for client compatibility
	gifts.GET("/recieved", h.Gift.Received)
	gifts.POST("/create", h.Gift.Create)
	gifts.POST("/complete", h.Gift.Complete)
	gifts.PATCH("/edit", h.Gift.Edit)
	gifts.DELETE("/delete", h.Gift.Delete)
	gifts.GET("/implications", h.Gift.Implications)
	gifts.GET("/implications/requests", h.Gift.ImplicationRequests)
	gifts.GET("/implications/sended", h.Gift.SentImplications)
	gifts.POST("/implications/send", h.Gift.SendImplication)
	gifts.POST("/implications/accept", h.Gift.AcceptImplication)
	gifts.DELETE("/implications/reject", h.Gift.RejectImplication)
	gifts.DELETE("/implications/delete", h.Gift.WithdrawImplication)
}
