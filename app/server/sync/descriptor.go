package sync

// 每个描述文件对应一个歌单：文件所在目录是它的分类，
// 可选的封面图以文件名引用同目录下的图片文件

type Descriptor struct {
	Name        string           `yaml:"name"`
	Items       []DescriptorItem `yaml:"items"`
	Spotify     string           `yaml:"spotify,omitempty"`
	Amazon      string           `yaml:"amazon,omitempty"`
	AppleMusic  string           `yaml:"apple_music,omitempty"`
	ReleaseDate string           `yaml:"release_date,omitempty"`
	Image       string           `yaml:"image,omitempty"`
}

type DescriptorItem struct {
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
}

// 发布日期的固定文本格式
const ReleaseDateLayout = "2006-01-02 15:04"
