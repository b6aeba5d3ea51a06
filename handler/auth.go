package handler

import (
	"Recycle/pkg/context"
	"Recycle/pkg/response"
	"Recycle/service"
	"Recycle/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
	UserService service.IUserService
}

func (a *Auth) RegisterRouter(r gin.IRouter, authed gin.HandlerFunc) {
	auth := r.Group("/auth")
	auth.POST("/signup", context.Wrap(a.Signup))
	auth.POST("/login", context.Wrap(a.Login))
	auth.POST("/logout", authed, context.Wrap(a.Logout))
	auth.GET("/me", authed, context.Wrap(a.Me))
}

func (a *Auth) Signup(c *gin.Context) error {
	var req types.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Name, valid email and a password of at least 6 characters are required")
	}

	user, err := a.AuthService.Signup(c.Request.Context(), &service.SignupOpt{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return toBizError(err, "Failed to create account")
	}
	response.Success(c, types.SignupResp{
		Message: "Account created",
		User:    types.NewUser(user),
	})
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Email and password are required")
	}

	res, err := a.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return toBizError(err, "Failed to log in")
	}
	response.Success(c, types.LoginResp{
		User:      types.NewUser(res.User),
		Token:     res.Token,
		ExpiresIn: res.ExpiresIn,
	})
	return nil
}

func (a *Auth) Logout(c *gin.Context) error {
	if err := a.AuthService.Logout(c.Request.Context(), context.GetTokenID(c)); err != nil {
		return toBizError(err, "Failed to log out")
	}
	response.Success(c, types.MessageResp{Message: "Logged out"})
	return nil
}

func (a *Auth) Me(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not authenticated")
	}
	user, err := a.UserService.GetUser(c.Request.Context(), uid)
	if err != nil {
		return toBizError(err, "Failed to fetch user")
	}
	response.Success(c, types.UserResp{User: types.NewUser(user)})
	return nil
}
