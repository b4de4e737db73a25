// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/kemasindo/kemas/internal/blocks"
	"github.com/kemasindo/kemas/internal/model"
)

// maxBlockBodySize caps editor request bodies. Block data is authored in
// small admin forms; anything bigger is a mistake or abuse.
const maxBlockBodySize = 1 << 20

// blockSource abstracts where a block array lives so the editor endpoints
// serve custom pages and static pages alike. Load returns the decoded
// array for one language; Save replaces it wholesale.
type blockSource interface {
	Load(r *http.Request, lang string) ([]blocks.Block, error)
	Save(r *http.Request, lang string, list []blocks.Block) error
}

// editorLang reads the content language being edited from the query
// string. English when absent or unknown.
func editorLang(r *http.Request) string {
	lang := r.URL.Query().Get("lang")
	if !model.ValidLang(lang) {
		return model.LangEnglish
	}
	return lang
}

func decodeBlockRequest(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBlockBodySize))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

// blockAdd appends a block of the requested type with its registry
// defaults and returns the created block.
func blockAdd(w http.ResponseWriter, r *http.Request, src blockSource) {
	var req struct {
		Type string `json:"type"`
	}
	if err := decodeBlockRequest(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lang := editorLang(r)
	list, err := src.Load(r, lang)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Page not found")
		return
	}

	list, created, err := blocks.Append(list, blocks.Type(req.Type))
	if err != nil {
		if errors.Is(err, blocks.ErrUnknownType) {
			writeJSONError(w, http.StatusBadRequest, "Unknown block type")
			return
		}
		logAndInternalError(w, "failed to append block", "error", err)
		return
	}

	if err := src.Save(r, lang, list); err != nil {
		logAndInternalError(w, "failed to save blocks", "error", err)
		return
	}

	writeJSONSuccess(w, map[string]any{"block": created, "count": len(list)})
}

// blockDelete removes a block by id. Deleting an id that is not present
// is a no-op success.
func blockDelete(w http.ResponseWriter, r *http.Request, src blockSource, blockID string) {
	lang := editorLang(r)
	list, err := src.Load(r, lang)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Page not found")
		return
	}

	list = blocks.Delete(list, blockID)
	if err := src.Save(r, lang, list); err != nil {
		logAndInternalError(w, "failed to save blocks", "error", err)
		return
	}

	writeJSONSuccess(w, map[string]any{"count": len(list)})
}

// blockReorder moves a block between positions. Out-of-range indexes
// leave the array unchanged.
func blockReorder(w http.ResponseWriter, r *http.Request, src blockSource) {
	var req struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := decodeBlockRequest(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lang := editorLang(r)
	list, err := src.Load(r, lang)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Page not found")
		return
	}

	list = blocks.Reorder(list, req.From, req.To)
	if err := src.Save(r, lang, list); err != nil {
		logAndInternalError(w, "failed to save blocks", "error", err)
		return
	}

	writeJSONSuccess(w, nil)
}

// blockUpdate replaces one block's data wholesale. The block keeps its
// type; the incoming payload is decoded against it.
func blockUpdate(w http.ResponseWriter, r *http.Request, src blockSource, blockID string) {
	var req struct {
		Data json.RawMessage `json:"data"`
	}
	if err := decodeBlockRequest(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lang := editorLang(r)
	list, err := src.Load(r, lang)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Page not found")
		return
	}

	existing, ok := blocks.Find(list, blockID)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Block not found")
		return
	}

	data, err := blocks.DecodeData(existing.Type, req.Data)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid block data")
		return
	}

	list, err = blocks.UpdateData(list, blockID, data)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := src.Save(r, lang, list); err != nil {
		logAndInternalError(w, "failed to save blocks", "error", err)
		return
	}

	writeJSONSuccess(w, nil)
}
