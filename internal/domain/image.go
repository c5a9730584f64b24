package domain

const (
	SplashSourcePrefix = "images/"
	SplashKey          = "splash.png"
	DefaultContentType = "image/png"
)

type ObjectInfo struct {
	Key string
}

type Object struct {
	Key         string
	Body        []byte
	ContentType string
}
