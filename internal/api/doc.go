// Package api 處理 HTTP 請求路由。
//
// 所有回應都包在統一的 {code, success, message, result} 結構中，
// 由 handlers 負責將服務層的結果轉換為 HTTP 回應。
package api
