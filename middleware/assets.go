package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
)

// Static files whose URLs carry a content hash
const (
	SiteCSSPath = "css/site.css"
	FaviconPath = "images/favicon.png"
)

var (
	cssVersion        string
	faviconVersion    string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		cssVersion = computeFileHash(filepath.Join(staticDir, SiteCSSPath))
		faviconVersion = computeFileHash(filepath.Join(staticDir, FaviconPath))
		log.Printf("[INFO] Asset versions initialized (css %s, favicon %s)", GetCSSVersion(context.Background()), GetFaviconVersion(context.Background()))
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetCSSVersion returns the stylesheet hash, "1" before InitAssetVersions
// found the file. ctx matches the other template helpers.
func GetCSSVersion(ctx context.Context) string {
	if cssVersion == "" {
		return "1"
	}
	return cssVersion
}

// GetFaviconVersion returns the favicon file version hash for cache busting
func GetFaviconVersion(ctx context.Context) string {
	if faviconVersion == "" {
		return "1"
	}
	return faviconVersion
}

// StaticCacheControl lets browsers keep versioned static files for a year and
// revalidate everything else under /static.
func StaticCacheControl() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if strings.HasPrefix(req.URL.Path, "/static/") {
				if req.URL.Query().Get("v") != "" {
					c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
				} else {
					c.Response().Header().Set("Cache-Control", "public, max-age=300, must-revalidate")
				}
			}
			return next(c)
		}
	}
}
