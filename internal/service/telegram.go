package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TelegramService Telegram 机器人客户端，向固定频道推送上新通知
type TelegramService struct {
	token   string
	chatID  string
	apiBase string
	client  *http.Client
}

// NewTelegramService 创建 Telegram 客户端，进程启动时构造一次，按引用注入
func NewTelegramService(token, chatID string) *TelegramService {
	return &TelegramService{
		token:   token,
		chatID:  chatID,
		apiBase: "https://api.telegram.org",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// MessageOptions 发送消息的可选参数
type MessageOptions struct {
	ChatID      string       // 覆盖默认频道
	ReplyMarkup *ReplyMarkup // 内联按钮
}

// ReplyMarkup 消息附带的内联键盘
type ReplyMarkup struct {
	InlineKeyboard [][]InlineButton `json:"inline_keyboard"`
}

// InlineButton 内联键盘按钮
type InlineButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// telegramResponse Bot API 的统一响应外壳
type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage 发送文本消息，正文固定按 HTML 渲染
func (s *TelegramService) SendMessage(text string, opts *MessageOptions) error {
	payload := map[string]interface{}{
		"chat_id":    s.chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if opts != nil {
		if opts.ChatID != "" {
			payload["chat_id"] = opts.ChatID
		}
		if opts.ReplyMarkup != nil {
			payload["reply_markup"] = opts.ReplyMarkup
		}
	}
	return s.call("sendMessage", payload)
}

// SendPhoto 发送图片，caption 可为空，chatID 为空时发往默认频道
func (s *TelegramService) SendPhoto(photo, caption, chatID string) error {
	payload := map[string]interface{}{
		"chat_id": s.chatID,
		"photo":   photo,
	}
	if caption != "" {
		payload["caption"] = caption
	}
	if chatID != "" {
		payload["chat_id"] = chatID
	}
	return s.call("sendPhoto", payload)
}

// call 调用 Bot API 方法并校验响应
func (s *TelegramService) call(method string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化请求失败: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", s.apiBase, s.token, method)
	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("请求 Telegram 失败: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}

	var result telegramResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("解析响应失败: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("Telegram 返回错误: %s (状态码 %d)", result.Description, resp.StatusCode)
	}
	return nil
}
