package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Request bodies are small JSON documents; uploads carry the PDF as base64
// inside the JSON, so the cap has to fit an encoded document.
const maxBodySize = 32 << 20

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type uploadRequest struct {
	FileName string `json:"filename"`
	Data     string `json:"data"`
}

func handleLivez() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func handleRegister(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := deps.Users.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"userid": user.ID})
	}
}

func handleLogin(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Username == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "missing credentials in body")
			return
		}

		token, err := deps.Users.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
	}
}

func handleSubmit(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "no bearer token in headers")
			return
		}

		var req uploadRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.FileName == "" || req.Data == "" {
			writeError(w, http.StatusBadRequest, "missing filename or data in body")
			return
		}

		data, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			writeError(w, http.StatusBadRequest, "data is not valid base64")
			return
		}

		jobID, err := deps.Jobs.Submit(r.Context(), userID, req.FileName, data)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"jobid": jobID})
	}
}

func handleList(deps Deps) http.HandlerFunc {
	type jobView struct {
		JobID            string `json:"jobid"`
		Status           string `json:"status"`
		OriginalFileName string `json:"original_filename"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "no bearer token in headers")
			return
		}

		jobs, err := deps.Jobs.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		views := make([]jobView, 0, len(jobs))
		for _, j := range jobs {
			views = append(views, jobView{
				JobID:            j.ID,
				Status:           string(j.Status),
				OriginalFileName: j.OriginalFileName,
			})
		}

		writeJSON(w, http.StatusOK, map[string]any{"jobs": views})
	}
}

func handleRetrieve(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "no bearer token in headers")
			return
		}

		jobID := chi.URLParam(r, "jobid")
		if jobID == "" {
			writeError(w, http.StatusBadRequest, "no jobid in request")
			return
		}

		result, err := deps.Jobs.Retrieve(r.Context(), userID, jobID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"data": base64.StdEncoding.EncodeToString(result),
		})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
