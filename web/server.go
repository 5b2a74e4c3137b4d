// Package web exposes the editor core to a browser frontend over HTTP and a
// WebSocket JSON-RPC connection. The frontend is view glue only: the file
// explorer, tab strip and text surface all call back into the session, and
// every recompute is pushed out as a "frame" notification.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/avercoe/codedeck/config"
	"github.com/avercoe/codedeck/editor"
	"github.com/avercoe/codedeck/highlight"
	"github.com/avercoe/codedeck/tree"
)

//go:embed static/*
var staticFS embed.FS

// Server serves the embedded frontend and the editor RPC surface.
type Server struct {
	session  *editor.Session
	roots    []*tree.Node
	upgrader websocket.Upgrader

	mu       sync.Mutex
	settings config.Settings
	clients  map[string]*wsClient
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

type rpcRequest struct {
	ID     any             `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	ID     any       `json:"id"`
	Result any       `json:"result,omitempty"`
	Error  *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// tabInfo is the tab-strip view of an open tab.
type tabInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
	Label    string `json:"label"`
}

// stateResult is the full view state returned by state-changing methods.
type stateResult struct {
	Tabs        []tabInfo       `json:"tabs"`
	ActiveID    string          `json:"activeId"`
	Text        string          `json:"text"`
	CaretOffset int             `json:"caretOffset"`
	Frame       editor.Frame    `json:"frame"`
	Settings    config.Settings `json:"settings"`
}

// treeNode is the explorer view of a tree node; file content stays server
// side until the file is opened.
type treeNode struct {
	Type     string     `json:"type"`
	Name     string     `json:"name"`
	Expanded bool       `json:"expanded,omitempty"`
	Children []treeNode `json:"children,omitempty"`
	Language string     `json:"language,omitempty"`
}

// NewServer creates a server over the given session and explorer tree. It
// registers itself for frame notifications and broadcasts them to every
// connected client.
func NewServer(session *editor.Session, roots []*tree.Node, settings config.Settings) *Server {
	s := &Server{
		session:  session,
		roots:    roots,
		settings: settings,
		clients:  make(map[string]*wsClient),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	session.OnFrame(func(f editor.Frame) {
		s.Broadcast("frame", f)
	})
	return s
}

// SetSettings swaps the active settings, notifies clients, and triggers a
// recompute so layout-affecting toggles take effect.
func (s *Server) SetSettings(settings config.Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	s.Broadcast("settings", settings)
	s.session.Recompute()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/ws":
		s.handleWebSocket(w, r)
	case "/preview":
		s.handlePreview(w, r)
	default:
		sub, err := fs.Sub(staticFS, "static")
		if err != nil {
			http.Error(w, "static files unavailable", 500)
			return
		}
		http.FileServer(http.FS(sub)).ServeHTTP(w, r)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	id := uuid.NewString()
	client := &wsClient{conn: conn}
	s.mu.Lock()
	s.clients[id] = client
	s.mu.Unlock()

	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.clients, id)
		s.mu.Unlock()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req rpcRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			continue
		}
		resp := s.handleRPC(req)
		data, _ := json.Marshal(resp)
		client.mu.Lock()
		_ = conn.WriteMessage(websocket.TextMessage, data)
		client.mu.Unlock()
	}
}

func (s *Server) handleRPC(req rpcRequest) rpcResponse {
	switch req.Method {
	case "tree":
		return s.rpcTree(req)
	case "openFile":
		return s.rpcOpenFile(req)
	case "closeTab":
		return s.rpcCloseTab(req)
	case "switchTab":
		return s.rpcSwitchTab(req)
	case "input":
		return s.rpcInput(req)
	case "key":
		return s.rpcKey(req)
	case "scroll":
		return s.rpcScroll(req)
	case "resize":
		return s.rpcResize(req)
	case "highlight":
		return s.rpcHighlight(req)
	case "state":
		return rpcResponse{ID: req.ID, Result: s.state()}
	default:
		return rpcResponse{
			ID:    req.ID,
			Error: &rpcError{Code: -32601, Message: fmt.Sprintf("unknown method: %s", req.Method)},
		}
	}
}

func (s *Server) state() stateResult {
	tabs := s.session.Tabs()
	infos := make([]tabInfo, len(tabs))
	for i, t := range tabs {
		infos[i] = tabInfo{
			ID:       t.ID,
			Name:     t.Name,
			Language: t.Language,
			Label:    editor.LanguageLabel(t.Language),
		}
	}
	activeID := ""
	if active, ok := s.session.ActiveTab(); ok {
		activeID = active.ID
	}
	s.mu.Lock()
	settings := s.settings
	s.mu.Unlock()
	return stateResult{
		Tabs:        infos,
		ActiveID:    activeID,
		Text:        s.session.Text(),
		CaretOffset: s.session.CaretOffset(),
		Frame:       s.session.Frame(),
		Settings:    settings,
	}
}

func (s *Server) rpcTree(req rpcRequest) rpcResponse {
	return rpcResponse{ID: req.ID, Result: map[string]any{"roots": viewNodes(s.roots)}}
}

func viewNodes(nodes []*tree.Node) []treeNode {
	out := make([]treeNode, 0, len(nodes))
	for _, n := range nodes {
		vn := treeNode{Type: string(n.Kind), Name: n.Name}
		if n.Kind == tree.Folder {
			vn.Expanded = n.Expanded
			vn.Children = viewNodes(n.Children)
		} else {
			vn.Language = n.Language
			if vn.Language == "" {
				vn.Language = editor.LanguageForFilename(n.Name)
			}
		}
		out = append(out, vn)
	}
	return out
}

func (s *Server) rpcOpenFile(req rpcRequest) rpcResponse {
	var p struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	node := tree.Find(s.roots, p.Name)
	if node == nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: "no such file: " + p.Name}}
	}
	s.session.OpenFile(node)
	return rpcResponse{ID: req.ID, Result: s.state()}
}

func (s *Server) rpcCloseTab(req rpcRequest) rpcResponse {
	var p struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	s.session.CloseTab(p.ID)
	return rpcResponse{ID: req.ID, Result: s.state()}
}

func (s *Server) rpcSwitchTab(req rpcRequest) rpcResponse {
	var p struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	s.session.SwitchTab(p.ID)
	return rpcResponse{ID: req.ID, Result: s.state()}
}

func (s *Server) rpcInput(req rpcRequest) rpcResponse {
	var p struct {
		Text  string `json:"text"`
		Caret int    `json:"caret"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	s.session.HandleInput(p.Text, p.Caret)
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcKey(req rpcRequest) rpcResponse {
	var p struct {
		Key      string `json:"key"`
		SelStart int    `json:"selStart"`
		SelEnd   int    `json:"selEnd"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	consumed := s.session.HandleKey(p.Key, p.SelStart, p.SelEnd)
	return rpcResponse{ID: req.ID, Result: map[string]any{
		"consumed": consumed,
		"text":     s.session.Text(),
		"caret":    s.session.CaretOffset(),
	}}
}

func (s *Server) rpcScroll(req rpcRequest) rpcResponse {
	var p struct {
		Top  int `json:"top"`
		Left int `json:"left"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	s.session.HandleScroll(p.Top, p.Left)
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcResize(req rpcRequest) rpcResponse {
	s.session.HandleResize()
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcHighlight(req rpcRequest) rpcResponse {
	var p struct {
		Text     string `json:"text"`
		Language string `json:"language"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	return rpcResponse{ID: req.ID, Result: map[string]string{
		"markup": highlight.Highlight(p.Text, p.Language),
	}}
}

// Broadcast sends a notification to all connected WebSocket clients.
func (s *Server) Broadcast(method string, params any) {
	msg, err := json.Marshal(map[string]any{
		"method": method,
		"params": params,
	})
	if err != nil {
		return
	}
	s.mu.Lock()
	clients := make([]*wsClient, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		c.mu.Lock()
		_ = c.conn.WriteMessage(websocket.TextMessage, msg)
		c.mu.Unlock()
	}
}
