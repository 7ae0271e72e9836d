package http_delivery

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/gustydev/messenger-api/config"
	"github.com/gustydev/messenger-api/internal/chat"
	"github.com/gustydev/messenger-api/internal/message"
	"github.com/gustydev/messenger-api/internal/user"
	appErrors "github.com/gustydev/messenger-api/pkg/errors"
	"github.com/gustydev/messenger-api/pkg/logger"
)

type Handler struct {
	users    user.UserUsecase
	chats    chat.ChatUsecase
	messages message.MessageUsecase
	logger   logger.Logger
	config   config.Config
}

func NewHandler(users user.UserUsecase, chats chat.ChatUsecase, messages message.MessageUsecase, logger logger.Logger, config config.Config) *Handler {
	return &Handler{users: users, chats: chats, messages: messages, logger: logger, config: config}
}

// Register mounts all routes on the router. Everything except register and
// login sits behind the token middleware.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/user/register", h.register).Methods("POST")
	r.HandleFunc("/user/login", h.login).Methods("POST")

	auth := r.NewRoute().Subrouter()
	auth.Use(ValidateToken(h.config))

	auth.HandleFunc("/user/list", h.listUsers).Methods("GET")
	auth.HandleFunc("/user/{userId}", h.getUser).Methods("GET")
	auth.HandleFunc("/user/{userId}", h.updateUser).Methods("PUT")
	auth.HandleFunc("/user/{userId}", h.deleteUser).Methods("DELETE")

	auth.HandleFunc("/chat", h.listChats).Methods("GET")
	auth.HandleFunc("/chat", h.createChat).Methods("POST")
	auth.HandleFunc("/chat/dm", h.createDM).Methods("POST")
	auth.HandleFunc("/chat/{chatId}", h.getChat).Methods("GET")
	auth.HandleFunc("/chat/{chatId}", h.updateChat).Methods("PUT")
	auth.HandleFunc("/chat/{chatId}/members", h.getChatMembers).Methods("GET")
	auth.HandleFunc("/chat/{chatId}/messages", h.getChatMessages).Methods("GET")
	auth.HandleFunc("/chat/{chatId}/message", h.postMessage).Methods("POST")

	auth.HandleFunc("/message/{messageId}", h.getMessage).Methods("GET")
	auth.HandleFunc("/message/{messageId}/read", h.markRead).Methods("POST")
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username        string `json:"username"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		DisplayName     string `json:"displayName"`
	}
	if !decode(w, r, &body) {
		return
	}

	dto, err := h.users.Register(r.Context(), user.RegisterCommand{
		Username:        body.Username,
		Password:        body.Password,
		ConfirmPassword: body.ConfirmPassword,
		DisplayName:     body.DisplayName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "User created successfully", "user": dto})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decode(w, r, &body) {
		return
	}

	resp, err := h.users.Login(r.Context(), user.LoginCommand{Username: body.Username, Password: body.Password})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	dto, err := h.users.Resolve(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	actingID, ok := subject(w, r)
	if !ok {
		return
	}

	var body struct {
		DisplayName   *string `json:"displayName"`
		Bio           *string `json:"bio"`
		ProfilePicURL *string `json:"profilePicUrl"`
		Avatar        *struct {
			Data        []byte `json:"data"`
			ContentType string `json:"contentType"`
		} `json:"avatar"`
	}
	if !decode(w, r, &body) {
		return
	}

	cmd := user.UpdateProfileCommand{
		DisplayName:   body.DisplayName,
		Bio:           body.Bio,
		ProfilePicURL: body.ProfilePicURL,
	}
	if body.Avatar != nil {
		cmd.Avatar = &user.AvatarUpload{
			Data:        body.Avatar.Data,
			ContentType: body.Avatar.ContentType,
		}
	}

	dto, err := h.users.UpdateProfile(r.Context(), userID, actingID, cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "User updated", "user": dto})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	actingID, ok := subject(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), userID, actingID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "User deleted"})
}

func (h *Handler) listChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.chats.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

func (h *Handler) createChat(w http.ResponseWriter, r *http.Request) {
	actingID, ok := subject(w, r)
	if !ok {
		return
	}

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Public      bool   `json:"public"`
	}
	if !decode(w, r, &body) {
		return
	}

	dto, err := h.chats.CreateGroup(r.Context(), actingID, chat.CreateGroupCommand{
		Title:       body.Title,
		Description: body.Description,
		Public:      body.Public,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Chat created", "chat": dto})
}

func (h *Handler) createDM(w http.ResponseWriter, r *http.Request) {
	actingID, ok := subject(w, r)
	if !ok {
		return
	}

	var body struct {
		RecipientID uuid.UUID `json:"recipientId"`
	}
	if !decode(w, r, &body) {
		return
	}

	dto, err := h.chats.CreateDM(r.Context(), actingID, chat.CreateDMCommand{RecipientID: body.RecipientID})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Chat created", "chat": dto})
}

func (h *Handler) getChat(w http.ResponseWriter, r *http.Request) {
	chatID, ok := pathID(w, r, "chatId")
	if !ok {
		return
	}
	dto, err := h.chats.Get(r.Context(), chatID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) updateChat(w http.ResponseWriter, r *http.Request) {
	chatID, ok := pathID(w, r, "chatId")
	if !ok {
		return
	}
	actingID, ok := subject(w, r)
	if !ok {
		return
	}

	var body struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Public      *bool   `json:"public"`
		PictureURL  *string `json:"pictureUrl"`
	}
	if !decode(w, r, &body) {
		return
	}

	dto, err := h.chats.UpdateMetadata(r.Context(), chatID, actingID, chat.UpdateChatCommand{
		Title:       body.Title,
		Description: body.Description,
		Public:      body.Public,
		PictureURL:  body.PictureURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Chat updated", "chat": dto})
}

func (h *Handler) getChatMembers(w http.ResponseWriter, r *http.Request) {
	chatID, ok := pathID(w, r, "chatId")
	if !ok {
		return
	}
	members, err := h.chats.ListMembers(r.Context(), chatID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *Handler) getChatMessages(w http.ResponseWriter, r *http.Request) {
	chatID, ok := pathID(w, r, "chatId")
	if !ok {
		return
	}
	msgs, err := h.messages.ListByChat(r.Context(), chatID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	chatID, ok := pathID(w, r, "chatId")
	if !ok {
		return
	}
	actingID, ok := subject(w, r)
	if !ok {
		return
	}

	var body struct {
		Content    string `json:"content"`
		Attachment *struct {
			Data        []byte `json:"data"`
			ContentType string `json:"contentType"`
		} `json:"attachment"`
	}
	if !decode(w, r, &body) {
		return
	}

	cmd := message.PostMessageCommand{Content: body.Content}
	if body.Attachment != nil {
		cmd.Attachment = &message.AttachmentUpload{
			Data:        body.Attachment.Data,
			ContentType: body.Attachment.ContentType,
		}
	}

	dto, err := h.messages.Post(r.Context(), chatID, actingID, cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Message posted", "message": dto})
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := pathID(w, r, "messageId")
	if !ok {
		return
	}
	dto, err := h.messages.Get(r.Context(), messageID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	messageID, ok := pathID(w, r, "messageId")
	if !ok {
		return
	}
	actingID, ok := subject(w, r)
	if !ok {
		return
	}

	if err := h.messages.MarkRead(r.Context(), messageID, actingID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Message marked as read"})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, appErrors.InvalidArg("invalid request body"))
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		writeError(w, appErrors.InvalidArg("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

func subject(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := SubjectID(r.Context())
	if !ok {
		writeError(w, appErrors.ErrInvalidToken)
		return uuid.Nil, false
	}
	return id, true
}
