package platform

// Package platform contains OS and third-party integrations: opening links in
// the system browser and resolving YouTube playlists into video ids via ytdlp.
