package catalogtest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/mux"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Message: msg})
}

func serialNum(r *http.Request) (string, bool) {
	sn, err := url.PathUnescape(mux.Vars(r)["serialNum"])
	if err != nil || sn == "" {
		return "", false
	}
	return sn, true
}

// getProduct handles GET /products/{serialNum}
func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	sn, ok := serialNum(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid serial number")
		return
	}

	record, err := s.repo.GetBySerialNum(sn)
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	if !s.pascal {
		json.NewEncoder(w).Encode(record)
		return
	}

	json.NewEncoder(w).Encode(pascalCase(record))
}

// addProduct handles POST /products
func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	record, ok := r.Context().Value(contextKeyRecord).(*Record)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	if err := s.repo.Add(record); err != nil {
		s.logger.Error("Error adding product", "serial_num", record.SerialNum, "error", err)
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

// deleteProduct handles DELETE /products/{serialNum}
func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	sn, ok := serialNum(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid serial number")
		return
	}

	if err := s.repo.Delete(sn); err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pascalCase renders a record with upper-cased field names
func pascalCase(record *Record) map[string]interface{} {
	b, _ := json.Marshal(record)

	var fields map[string]interface{}
	json.Unmarshal(b, &fields)

	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		r, size := utf8.DecodeRuneInString(k)
		out[string(unicode.ToUpper(r))+k[size:]] = v
	}
	return out
}
