// Package middleware 提供 HTTP 中间件：CORS、限流、熔断、认证、
// 角色、追踪、指标与存储客户端注入.
package middleware
