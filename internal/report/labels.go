package report

// Labels holds every user-facing string the Reporter prints
type Labels struct {
	SystemHeader string
	OS           string
	OSVersion    string
	Machine      string
	Processor    string
	Runtime      string

	BasicHeader    string
	Name           string
	MemorySize     string
	DriverVersion  string
	Unsupported    string // %s is the platform name
	WMIUnavailable string
	BasicError     string

	DetailedHeader      string
	DetailedUnsupported string
	DisplayMode         string
	RefreshRate         string
	Status              string
	VideoProcessor      string
	// DisplayInterface labels the video memory type. Existing consumers match on it.
	DisplayInterface  string
	DriverDate        string
	MaxRefreshRate    string
	MinRefreshRate    string
	VideoArchitecture string
	Unknown           string
	DetailedError     string

	NvidiaHeader  string
	NvidiaMissing string
	NvidiaError   string

	ProviderInitFailed string
	Interrupted        string
	RunError           string
}

// English is the default label table
var English = Labels{
	SystemHeader: "System Information",
	OS:           "Operating system",
	OSVersion:    "System version",
	Machine:      "Machine type",
	Processor:    "Processor",
	Runtime:      "Go version",

	BasicHeader:    "Basic GPU Information",
	Name:           "GPU name",
	MemorySize:     "Memory size",
	DriverVersion:  "Driver version",
	Unsupported:    "Current system (%s) is not supported",
	WMIUnavailable: "Unable to get GPU info: WMI initialization failed",
	BasicError:     "Error getting GPU info",

	DetailedHeader:      "Detailed GPU Information",
	DetailedUnsupported: "Detailed query supported only on Windows",
	DisplayMode:         "Display mode",
	RefreshRate:         "Refresh rate",
	Status:              "Status",
	VideoProcessor:      "Video processor",
	DisplayInterface:    "Display interface",
	DriverDate:          "Driver date",
	MaxRefreshRate:      "Max refresh rate",
	MinRefreshRate:      "Min refresh rate",
	VideoArchitecture:   "Video architecture",
	Unknown:             "unknown",
	DetailedError:       "Error getting detailed info",

	NvidiaHeader:  "NVIDIA GPU Information",
	NvidiaMissing: "NVIDIA GPU not found or driver not installed",
	NvidiaError:   "Error checking NVIDIA GPU",

	ProviderInitFailed: "Failed to initialize WMI",
	Interrupted:        "Interrupted by user",
	RunError:           "Program error",
}

// Chinese is the zh label table
var Chinese = Labels{
	SystemHeader: "系统信息",
	OS:           "操作系统",
	OSVersion:    "系统版本",
	Machine:      "机器类型",
	Processor:    "处理器",
	Runtime:      "Go版本",

	BasicHeader:    "显卡基本信息",
	Name:           "显卡名称",
	MemorySize:     "显存大小",
	DriverVersion:  "驱动版本",
	Unsupported:    "当前系统 (%s) 暂不支持",
	WMIUnavailable: "无法获取显卡信息：WMI初始化失败",
	BasicError:     "获取显卡信息时出错",

	DetailedHeader:      "详细显卡信息",
	DetailedUnsupported: "详细信息查询仅支持Windows系统",
	DisplayMode:         "显示模式",
	RefreshRate:         "刷新率",
	Status:              "显卡状态",
	VideoProcessor:      "显卡制造商",
	DisplayInterface:    "显示器接口",
	DriverDate:          "驱动日期",
	MaxRefreshRate:      "最大刷新率",
	MinRefreshRate:      "最小刷新率",
	VideoArchitecture:   "显卡芯片",
	Unknown:             "未知",
	DetailedError:       "获取详细信息时出错",

	NvidiaHeader:  "NVIDIA GPU信息",
	NvidiaMissing: "NVIDIA显卡未找到或驱动未安装",
	NvidiaError:   "检查NVIDIA显卡时出错",

	ProviderInitFailed: "初始化WMI失败",
	Interrupted:        "程序被用户中断",
	RunError:           "程序运行出错",
}

var locales = map[string]Labels{
	"en": English,
	"zh": Chinese,
}

// LabelsFor returns the label table for a locale and whether it was known
func LabelsFor(locale string) (Labels, bool) {
	l, ok := locales[locale]
	if !ok {
		return English, false
	}
	return l, true
}
