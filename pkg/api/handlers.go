package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses the named path parameter as a positive integer id. A false
// return means the response has already been written.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body; a false return means the response has
// already been written.
func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// formFile reads a multipart upload field into memory; a false return means
// the response has already been written.
func formFile(c *gin.Context, field string) (string, []byte, bool) {
	header, err := c.FormFile(field)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + field + " upload"})
		return "", nil, false
	}

	f, err := header.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unreadable " + field + " upload"})
		return "", nil, false
	}
	defer f.Close()

	content := make([]byte, header.Size)
	if _, err := io.ReadFull(f, content); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unreadable " + field + " upload"})
		return "", nil, false
	}
	return header.Filename, content, true
}

// sendLabelCSV writes a GX Works 3 label export as a download.
func sendLabelCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-16le", data)
}
