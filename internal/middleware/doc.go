// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 包含請求 ID、存取日誌與 Prometheus 指標等跨請求的功能。
package middleware
