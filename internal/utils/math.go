package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// EaseOutCubic — 1-(1-p)^3, p ограничивается отрезком [0, 1]
func EaseOutCubic(p float64) float64 {
	p = Clamp(p, 0, 1)
	q := 1 - p
	return 1 - q*q*q
}

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Hypot2 — половина диагонали прямоугольника w×h
func Hypot2(w, h float64) float64 {
	return math.Sqrt(w*w+h*h) / 2
}

// Normalize возвращает единичный вектор и длину (dx, dy)
func Normalize(dx, dy float64) (float64, float64, float64) {
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}
