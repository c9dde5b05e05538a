package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resumecloner/internal/catalog"
	"resumecloner/internal/database"
	"resumecloner/internal/errcode"
	"resumecloner/internal/resume"
)

func newDraftTestHandler(t *testing.T) (*DraftHandler, *fakeStorage) {
	t.Helper()
	st := newFakeStorage()
	return NewDraftHandler(newTestDB(t), st, testLogger()), st
}

// seedDraft 将文档写入数据库并返回草稿 ID。
func seedDraft(t *testing.T, h *DraftHandler, doc resume.Document) uint {
	t.Helper()
	content, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	draft := database.Draft{
		Title:   "test draft",
		Content: content,
		Status:  database.StatusCompleted,
	}
	if err := h.db.Create(&draft).Error; err != nil {
		t.Fatalf("seed draft: %v", err)
	}
	return draft.ID
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateDraft_WithTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newDraftTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v1/drafts", gin.H{"templateId": "t4"})

	h.CreateDraft(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		ID      uint            `json:"id"`
		Status  string          `json:"status"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != database.StatusCompleted {
		t.Fatalf("expected status %q got %q", database.StatusCompleted, resp.Status)
	}

	var doc resume.Document
	if err := json.Unmarshal(resp.Content, &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.TemplateID != "t4" {
		t.Fatalf("expected template t4 got %q", doc.TemplateID)
	}
	tpl, err := catalog.Lookup("t4")
	if err != nil {
		t.Fatalf("lookup template: %v", err)
	}
	if doc.AccentColor != tpl.Colors.Primary {
		t.Fatalf("expected accent %q got %q", tpl.Colors.Primary, doc.AccentColor)
	}
	if len(doc.Sections) != 3 {
		t.Fatalf("expected 3 seeded sections got %d", len(doc.Sections))
	}
	if doc.Sections[0].Title != "Experience" || doc.Sections[2].Title != "Skills" {
		t.Fatalf("unexpected seeded sections: %+v", doc.Sections)
	}
}

func TestCreateDraft_UnknownTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newDraftTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v1/drafts", gin.H{"templateId": "t999"})

	h.CreateDraft(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d body=%s", w.Code, w.Body.String())
	}
	if got := decodeErrorBody(t, w).Code; got != errcode.NotFound {
		t.Fatalf("expected code %d got %d", errcode.NotFound, got)
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newDraftTestHandler(t)

	payload, err := resume.ExportDraft(resume.Example())
	if err != nil {
		t.Fatalf("export example: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/drafts/import", bytes.NewReader(payload))

	h.ImportDraft(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var created struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Title != "张小明" {
		t.Fatalf("expected title from full name, got %q", created.Title)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/drafts/"+strconv.FormatUint(uint64(created.ID), 10)+"/export", nil)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(uint64(created.ID), 10)}}

	h.ExportDraft(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", cd)
	}

	doc, err := resume.ParseDraft(w.Body.Bytes())
	if err != nil {
		t.Fatalf("parse exported draft: %v", err)
	}
	if doc.PersonalInfo.FullName != "张小明" {
		t.Fatalf("round trip lost full name, got %q", doc.PersonalInfo.FullName)
	}
	if len(doc.Sections) != 3 {
		t.Fatalf("round trip lost sections, got %d", len(doc.Sections))
	}
}

func TestApplyOps_UpdateAndFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newDraftTestHandler(t)
	draftID := seedDraft(t, h, resume.Example())
	idParam := strconv.FormatUint(uint64(draftID), 10)

	ops := gin.H{"ops": []gin.H{
		{"op": "updateItemField", "sectionId": "exp", "itemId": "e1", "field": "title", "value": "首席产品经理"},
		{"op": "insertFormat", "field": "summary", "style": "bold", "start": 0, "end": 2},
	}}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v1/drafts/"+idParam+"/ops", ops)
	c.Params = gin.Params{{Key: "id", Value: idParam}}

	h.ApplyOps(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Document json.RawMessage `json:"document"`
		Cursor   *int            `json:"cursor"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Cursor == nil {
		t.Fatalf("expected cursor after insertFormat")
	}

	var doc resume.Document
	if err := json.Unmarshal(resp.Document, &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	item, ok := doc.Sections[0].Items[0].(resume.DetailItem)
	if !ok {
		t.Fatalf("expected detail item, got %T", doc.Sections[0].Items[0])
	}
	if item.Title != "首席产品经理" {
		t.Fatalf("expected updated title, got %q", item.Title)
	}
	if !strings.HasPrefix(doc.PersonalInfo.Summary, "**") {
		t.Fatalf("expected bold markup in summary, got %q", doc.PersonalInfo.Summary)
	}

	// 持久化检查：重新读库应得到同一份文档。
	var draft database.Draft
	if err := h.db.First(&draft, draftID).Error; err != nil {
		t.Fatalf("reload draft: %v", err)
	}
	var stored resume.Document
	if err := json.Unmarshal(draft.Content, &stored); err != nil {
		t.Fatalf("decode stored content: %v", err)
	}
	if stored.PersonalInfo.Summary != doc.PersonalInfo.Summary {
		t.Fatalf("stored summary diverged from response")
	}
}

func TestApplyOps_UnknownOp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newDraftTestHandler(t)
	draftID := seedDraft(t, h, resume.Example())
	idParam := strconv.FormatUint(uint64(draftID), 10)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v1/drafts/"+idParam+"/ops", gin.H{
		"ops": []gin.H{{"op": "explode"}},
	})
	c.Params = gin.Params{{Key: "id", Value: idParam}}

	h.ApplyOps(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteDraft_CleansArtifacts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, st := newDraftTestHandler(t)
	draftID := seedDraft(t, h, resume.Example())
	idParam := strconv.FormatUint(uint64(draftID), 10)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/v1/drafts/"+idParam, nil)
	c.Params = gin.Params{{Key: "id", Value: idParam}}

	h.DeleteDraft(c)
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d body=%s", w.Code, w.Body.String())
	}
	if len(st.deletedPrefixes) != 3 {
		t.Fatalf("expected 3 prefix deletions, got %v", st.deletedPrefixes)
	}

	var count int64
	if err := h.db.Model(&database.Draft{}).Where("id = ?", draftID).Count(&count).Error; err != nil {
		t.Fatalf("count drafts: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected draft deleted, found %d", count)
	}
}

func TestGetDraft_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newDraftTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/drafts/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.GetDraft(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestListTemplates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewTemplateHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/templates", nil)

	h.ListTemplates(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var resp struct {
		Items []catalog.Template `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != len(catalog.All()) {
		t.Fatalf("expected %d templates got %d", len(catalog.All()), len(resp.Items))
	}
}
