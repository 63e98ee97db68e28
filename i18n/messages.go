package i18n

// Message keys
const (
	Title               = "title"
	LoginInProgress     = "loginInProgress"
	LoginSuccess        = "loginSuccess"
	LoginFailed         = "loginFailed"
	NetworkError        = "networkError"
	LogoutSuccess       = "logoutSuccess"
	TokenCopied         = "tokenCopied"
	TokenCopyFailed     = "tokenCopyFailed"
	NoTokenToCopy       = "noTokenToCopy"
	Copied              = "copied"
	Unauthenticated     = "unauthenticated"
	Authenticated       = "authenticated"
	Login               = "login"
	Logout              = "logout"
	CopyToken           = "copyToken"
	ManualCopyTitle     = "manualCopyTitle"
	ManualCopyDesc      = "manualCopyDesc"
	Close               = "close"
	EmailPlaceholder    = "emailPlaceholder"
	PasswordPlaceholder = "passwordPlaceholder"
)

// Table maps message keys to display strings
type Table map[string]string

// Tables returns the built-in translations keyed by base language
func Tables() map[string]Table {
	return map[string]Table{
		"en": {
			Title:               "API Login",
			LoginInProgress:     "Logging in...",
			LoginSuccess:        "Login successful!",
			LoginFailed:         "Login failed.",
			NetworkError:        "Network error occurred.",
			LogoutSuccess:       "Logout successful.",
			TokenCopied:         "Token copied to clipboard!",
			TokenCopyFailed:     "Failed to copy token. Please copy manually.",
			NoTokenToCopy:       "No token to copy.",
			Copied:              "✅ Copied",
			Unauthenticated:     "Unauthenticated",
			Authenticated:       "Authenticated",
			Login:               "Login",
			Logout:              "Logout",
			CopyToken:           "Copy Token",
			ManualCopyTitle:     "Manual Access Token Copy",
			ManualCopyDesc:      "Select and copy the token below, then paste it in the Swagger UI Authorization dialog.",
			Close:               "Close",
			EmailPlaceholder:    "Email",
			PasswordPlaceholder: "Password",
		},
		"ko": {
			Title:               "API 로그인",
			LoginInProgress:     "로그인 중...",
			LoginSuccess:        "로그인에 성공했습니다!",
			LoginFailed:         "로그인에 실패했습니다.",
			NetworkError:        "네트워크 오류가 발생했습니다.",
			LogoutSuccess:       "로그아웃되었습니다.",
			TokenCopied:         "토큰이 클립보드에 복사되었습니다!",
			TokenCopyFailed:     "토큰 복사에 실패했습니다. 수동으로 복사하세요.",
			NoTokenToCopy:       "복사할 토큰이 없습니다.",
			Copied:              "✅ 복사됨",
			Unauthenticated:     "미인증",
			Authenticated:       "인증됨",
			Login:               "로그인",
			Logout:              "로그아웃",
			CopyToken:           "토큰 복사",
			ManualCopyTitle:     "액세스 토큰 수동 복사",
			ManualCopyDesc:      "아래 토큰을 선택하여 복사한 후, Swagger UI의 Authorization 대화상자에 붙여넣으세요.",
			Close:               "닫기",
			EmailPlaceholder:    "이메일",
			PasswordPlaceholder: "패스워드",
		},
		"ja": {
			Title:               "API ログイン",
			LoginInProgress:     "ログイン中...",
			LoginSuccess:        "ログインに成功しました！",
			LoginFailed:         "ログインに失敗しました。",
			NetworkError:        "ネットワークエラーが発生しました。",
			LogoutSuccess:       "ログアウトしました。",
			TokenCopied:         "トークンがクリップボードにコピーされました！",
			TokenCopyFailed:     "トークンのコピーに失敗しました。手動でコピーしてください。",
			NoTokenToCopy:       "コピーするトークンがありません。",
			Copied:              "✅ コピー済み",
			Unauthenticated:     "未認証",
			Authenticated:       "認証済み",
			Login:               "ログイン",
			Logout:              "ログアウト",
			CopyToken:           "トークンをコピー",
			ManualCopyTitle:     "アクセストークン手動コピー",
			ManualCopyDesc:      "下のトークンを選択してコピーし、Swagger UIのAuthorization ダイアログに貼り付けてください。",
			Close:               "閉じる",
			EmailPlaceholder:    "メール",
			PasswordPlaceholder: "パスワード",
		},
	}
}
