package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"customer-api/internal/core/auth"
	"customer-api/internal/core/cache"
	"customer-api/internal/domain"
	mdw "customer-api/internal/transport/http/middleware"
	resp "customer-api/internal/transport/http/response"
	"customer-api/pkg/utils"
)

const profileCacheTTL = 5 * time.Minute

type UserHandler struct {
	Store domain.UserStore
	JWT   *auth.JWTer
	Cache *cache.Cache // 可选，nil 表示直连 DB
	Log   *zap.Logger
}

func NewUserHandler(store domain.UserStore, jwter *auth.JWTer, c *cache.Cache, l *zap.Logger) *UserHandler {
	return &UserHandler{Store: store, JWT: jwter, Cache: c, Log: l}
}

type registerIn struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// Register POST /user
func (h *UserHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Msg(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	// 固定顺序逐个校验，报第一个缺失字段
	for _, f := range []struct{ name, val string }{
		{"email", in.Email},
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"password", in.Password},
	} {
		if f.val == "" {
			resp.Msg(c, http.StatusBadRequest, "Missing required field: "+f.name)
			return
		}
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		h.Log.Error("hash password", zap.Error(err))
		resp.Internal(c)
		return
	}

	u := domain.User{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
	}
	if err := h.Store.Create(&u); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			resp.Msg(c, http.StatusBadRequest, "User with this email already exists")
			return
		}
		h.Log.Error("create user", zap.Error(err))
		resp.Internal(c)
		return
	}
	resp.Msg(c, http.StatusOK, "Successfully created user")
}

// Delete DELETE /user/:id
// 目标不存在回 400，沿用老契约（查询类才是 404）
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.Store.Delete(id)
	if err != nil {
		h.Log.Error("delete user", zap.Uint("id", id), zap.Error(err))
		resp.Internal(c)
		return
	}
	if !deleted {
		resp.Msg(c, http.StatusBadRequest, "User not found")
		return
	}
	if h.Cache != nil {
		if err := h.Cache.Invalidate(c.Request.Context(), profileKey(id)); err != nil {
			h.Log.Warn("cache invalidate", zap.Uint("id", id), zap.Error(err))
		}
	}
	resp.Msg(c, http.StatusOK, "Successfully deleted user")
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login POST /login
// 邮箱不存在和密码错误回同一个 401 文案，不暴露账号是否存在
func (h *UserHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Msg(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	for _, f := range []struct{ name, val string }{
		{"email", in.Email},
		{"password", in.Password},
	} {
		if f.val == "" {
			resp.Msg(c, http.StatusBadRequest, "Missing required field: "+f.name)
			return
		}
	}

	u, err := h.Store.FindByEmail(in.Email)
	if err != nil {
		h.Log.Error("find by email", zap.Error(err))
		resp.Internal(c)
		return
	}
	if u == nil {
		resp.Msg(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	match, err := utils.CheckPassword(in.Password, u.PasswordHash)
	if err != nil {
		h.Log.Error("corrupt password hash", zap.Uint("id", u.ID), zap.Error(err))
		resp.Internal(c)
		return
	}
	if !match {
		resp.Msg(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.JWT.Issue(u.ID)
	if err != nil {
		h.Log.Error("issue token", zap.Uint("id", u.ID), zap.Error(err))
		resp.Internal(c)
		return
	}
	c.JSON(http.StatusOK, resp.LoginResult{Message: "Login successful", Authorization: token})
}

// Me GET /user（鉴权）
// uid 来自 AuthJWT 中间件验过的令牌；用户在发令牌后被删会 404
func (h *UserHandler) Me(c *gin.Context) {
	uid, ok := c.Get(mdw.KeyUserID)
	if !ok {
		resp.Msg(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	h.respondProfile(c, uid.(uint))
}

// GetByID GET /user/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondProfile(c, id)
}

func (h *UserHandler) respondProfile(c *gin.Context, id uint) {
	u, err := h.findByID(c, id)
	if err != nil {
		h.Log.Error("find by id", zap.Uint("id", id), zap.Error(err))
		resp.Internal(c)
		return
	}
	if u == nil {
		resp.Msg(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, resp.Profile{FirstName: u.FirstName, LastName: u.LastName})
}

// findByID 有 redis 就走读穿缓存（singleflight 合并回源），没有就直查
func (h *UserHandler) findByID(c *gin.Context, id uint) (*domain.User, error) {
	if h.Cache == nil {
		return h.Store.FindByID(id)
	}
	return cache.GetOrLoadJSON[domain.User](h.Cache, c.Request.Context(), profileKey(id), profileCacheTTL,
		func(ctx context.Context) (*domain.User, error) {
			return h.Store.FindByID(id)
		})
}

type listRow struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ListAll GET /listofusers（调试用，配置开关默认关闭）
func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.Store.ListAll()
	if err != nil {
		h.Log.Error("list users", zap.Error(err))
		resp.Internal(c)
		return
	}
	rows := make([]listRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, listRow{Email: u.Email, FirstName: u.FirstName, LastName: u.LastName})
	}
	c.JSON(http.StatusOK, rows)
}

// Home GET / 服务自描述文档
func (h *UserHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "customer-api",
		"endpoints": []gin.H{
			{"method": "POST", "path": "/user", "description": "register a new user"},
			{"method": "DELETE", "path": "/user/{id}", "description": "delete a user by id"},
			{"method": "POST", "path": "/login", "description": "log in and receive a bearer token"},
			{"method": "GET", "path": "/user", "description": "fetch own profile (bearer token)"},
			{"method": "GET", "path": "/user/{id}", "description": "fetch a profile by id"},
		},
	})
}

func profileKey(id uint) string { return fmt.Sprintf("user:profile:%d", id) }

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.Msg(c, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return uint(id), true
}
