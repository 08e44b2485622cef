package utils

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// GetSystemMetrics는 CPU와 메모리 사용률을 0~1 범위로 반환합니다.
func GetSystemMetrics() (float64, float64) {
	cpuUsage := 0.0
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuUsage = percents[0] / 100.0
	}

	memUsage := 0.0
	if vm, err := mem.VirtualMemory(); err == nil {
		memUsage = vm.UsedPercent / 100.0
	}

	return cpuUsage, memUsage
}

// 마지막 서버 메트릭 업데이트 시간
var lastServerMetricUpdate time.Time

// UpdateServerLoadMetrics는 서버 부하 게이지를 주기적으로 갱신합니다.
// 모든 요청마다 수집하는 것은 비효율적이므로 10초에 한 번만 갱신합니다.
func UpdateServerLoadMetrics(serverName string) {
	now := time.Now()
	if now.Sub(lastServerMetricUpdate) < 10*time.Second {
		return
	}
	lastServerMetricUpdate = now

	cpuUsage, memoryUsage := GetSystemMetrics()

	// 서버 부하 계산 - CPU와 메모리 사용률의 가중 평균
	load := (cpuUsage * 0.7) + (memoryUsage * 0.3)

	isHealthy := true
	if cpuUsage > 0.9 || memoryUsage > 0.95 {
		isHealthy = false
	}

	capacity := 1.0 - load
	if capacity < 0 {
		capacity = 0
	}

	UpdateServerMetric(serverName, "load", load)
	healthValue := 0.0
	if isHealthy {
		healthValue = 1.0
	}
	UpdateServerMetric(serverName, "healthy", healthValue)
	UpdateServerMetric(serverName, "capacity", capacity)
}
