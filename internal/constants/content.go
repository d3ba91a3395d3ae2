package constants

// Mood is one selectable mood token
type Mood struct {
	Emoji string
	Label string
}

// Moods is the fixed mood enum offered to both partners.
var Moods = []Mood{
	{Emoji: "😊", Label: "vui"},
	{Emoji: "🥹", Label: "nhớ"},
	{Emoji: "😴", Label: "buồn ngủ"},
	{Emoji: "😤", Label: "hơi dỗi"},
	{Emoji: "🥰", Label: "yêu"},
	{Emoji: "😢", Label: "buồn"},
}

var CuteMessages = []string{
	"Còn {days} ngày nữa là được gặp nhau rồi nè 🥹",
	"Nhớ nhau quá đi mất thôi 💕",
	"Ai đến trễ là bao trà sữa nha 😤",
	"Hẹn hò mà không thấy bồ là buồn lắm á 🥺",
	"Countdown từng giây để được ôm bồ 🤗",
	"Chờ đợi cũng là hạnh phúc mà nhỉ 💖",
	"Sắp gặp nhau rồi, hồi hộp quá đi 😍",
	"Bồ ơi, sắp được gặp rồi nè 🌸",
	"Mỗi giây trôi qua là gần bồ hơn một chút 💗",
	"Yêu bồ nhiều lắm, nhớ bồ nhiều hơn 💕",
}

var DateChallenges = []string{
	"Người đến trước chọn quán ☕",
	"Hôm nay không được dùng điện thoại 30 phút 📵",
	"Chụp 1 ảnh không chỉnh sửa 📸",
	"Ai đến trễ mua nước 🧋",
	"Kể 3 điều yêu ở người kia 💕",
	"Đổi điện thoại cho nhau xem 10 phút 📱",
	"Đoán xem người kia đang muốn ăn gì 🍜",
	"Cùng chọn 1 bài hát chung 🎵",
	"Selfie với biểu cảm xấu nhất 🤪",
	"Ai cười trước thua, người thua bao dessert 🍰",
	"Kể 1 bí mật chưa từng nói 🤫",
	"Hôm nay gọi nhau bằng tên thật 😏",
	"Đi bộ 15 phút không nói chuyện, chỉ nắm tay 🚶",
	"Viết 1 câu tặng nhau lên giấy ✍️",
	"Cùng lập kế hoạch cho date tiếp theo 📅",
}

var LoveQuotes = []string{
	"Yêu là khi muốn gặp nhau mỗi ngày 💕",
	"Bên nhau là nhà 🏠",
	"You are my today and all of my tomorrows 🌈",
	"Tình yêu là bao trà sữa không cần trả 🧋",
	"Cùng nhau là đủ rồi 💖",
}

var DailyQuotes = []string{
	"Không cần gặp nhiều, chỉ cần đúng người 💫",
	"Chờ đợi cũng là một dạng quan tâm 🌙",
	"Nhớ là nhớ, không cần lý do 🥹",
	"Có người để nghĩ đến là hạnh phúc 💭",
	"Yêu đúng người, mọi thứ đều có ý nghĩa ✨",
	"Khoảng cách không quan trọng bằng tấm lòng 💕",
	"Một ngày không gặp cũng dài như một năm 📅",
	"Người ta yêu vì cảm giác, ở lại vì lựa chọn 🌸",
	"Hạnh phúc đơn giản là có người để chờ 🎀",
	"Tình yêu không cần hoàn hảo, chỉ cần thật lòng 💖",
	"Nhớ ai đó mỗi ngày là một dạng may mắn 🍀",
	"Bên nhau không cần nói nhiều, hiểu là đủ 🫶",
	"Yêu là khi cả thế giới thu bé lại còn một người 🌍",
	"Đợi chờ có người chia sẻ là điều đáng giá 🎁",
}

var TruthQuestions = []string{
	"Khoảnh khắc nào bạn biết mình đã yêu người kia? 💕",
	"Điều gì ở người kia khiến bạn thấy annoying nhất? 😤",
	"Bạn hay nhắn tin gì cho bạn thân về người kia? 📱",
	"Kỷ niệm nào của cả hai khiến bạn nhớ nhất? 💭",
	"Có bao giờ bạn ghen chưa? Kể đi! 😏",
	"Nếu được thay đổi 1 thứ ở người kia, đó là gì? 🤔",
	"Lần cuối bạn khóc vì người kia là khi nào? 😢",
	"Bạn có crush ai khác trước khi quen người kia không? 👀",
	"Điều gì khiến bạn yêu ngày càng nhiều? 🥰",
	"Secret mà bạn chưa bao giờ nói cho người kia? 🤫",
	"Bạn từng nằm mơ thấy người kia chưa? Mơ gì? 😴",
	"Rating người kia từ 1-10 về độ cute? 💖",
	"Bạn nhớ nhất mùi hương gì của người kia? 🌸",
	"Câu nói nào của người kia khiến bạn nhớ mãi? 💬",
	"Lần đầu gặp, bạn nghĩ gì về người kia? 🤭",
}

var DareActions = []string{
	"Gọi video cho người kia ngay bây giờ và nói 'yêu bồ!' 📞",
	"Đăng story tag người kia với caption dễ thương 📸",
	"Gửi voice message hát 1 câu hát yêu thích 🎤",
	"Nhắn tin 'Anh/Em nhớ bồ' cho người kia 💌",
	"Selfie biểu cảm xấu nhất gửi cho người kia 🤪",
	"Kể 5 điều yêu ở người kia trong 30 giây ⏱️",
	"Đổi avatar thành ảnh couple trong 24h 📷",
	"Viết 1 bài thơ ngắn tặng người kia (4 câu) ✍️",
	"Nhắn tin xin lỗi 1 lần đã làm người kia buồn 🥺",
	"Hứa 1 điều sẽ làm cho người kia trong tuần này 🤝",
	"Gửi playlist nhạc gợi nhớ đến người kia 🎵",
	"Vẽ portrait người kia bằng có 1 phút 🎨",
	"Kể 1 kỷ niệm embarrassing cho người kia nghe 😅",
	"Nhắn tin cho mẹ người kia hỏi thăm 👩",
	"Đặt tên gọi mới cho người kia ngay và luôn 🏷️",
}

var DefaultFoodOptions = []string{
	"Phở 🍜",
	"Bún bò 🥢",
	"Cơm tấm 🍚",
	"Pizza 🍕",
	"Sushi 🍣",
	"Lẩu 🍲",
	"BBQ 🥩",
	"Gà rán 🍗",
}

var DefaultDateOptions = []string{
	"Xem phim 🎬",
	"Cafe ☕",
	"Công viên 🌳",
	"Shopping 🛍️",
	"Karaoke 🎤",
	"Arcade 🎮",
	"Bảo tàng 🏛️",
	"Đi dạo 🚶",
}

// Suggestion is a canned bucket list entry
type Suggestion struct {
	Text  string
	Emoji string
}

var BucketSuggestions = []Suggestion{
	{Text: "Cùng ngắm hoàng hôn", Emoji: "🌅"},
	{Text: "Nấu ăn cùng nhau", Emoji: "👨‍🍳"},
	{Text: "Đi du lịch biển", Emoji: "🏖️"},
	{Text: "Chụp ảnh couple", Emoji: "📸"},
	{Text: "Xem phim sao rơi", Emoji: "🌠"},
	{Text: "Đi xe đạp đôi", Emoji: "🚲"},
	{Text: "Viết thư tay cho nhau", Emoji: "✉️"},
	{Text: "Học nấu 1 món mới", Emoji: "🍝"},
	{Text: "Đi cắm trại", Emoji: "⛺"},
	{Text: "Cùng tô màu/vẽ tranh", Emoji: "🎨"},
	{Text: "Đi karaoke", Emoji: "🎤"},
	{Text: "Ngắm sao đêm", Emoji: "🌟"},
	{Text: "Đi thử quán mới", Emoji: "🍽️"},
	{Text: "Chơi boardgame cùng nhau", Emoji: "🎲"},
	{Text: "Đi dạo công viên buổi sáng", Emoji: "🌸"},
}

var PromiseSuggestions = []string{
	"Luôn lắng nghe khi bồ buồn 🫶",
	"Không bao giờ đi ngủ khi còn giận nhau 🌙",
	"Mỗi tuần ít nhất 1 lần date 📅",
	"Luôn trung thực với nhau 💎",
	"Nói yêu nhau mỗi ngày 💕",
	"Cùng đi du lịch mỗi năm ✈️",
	"Cùng nấu ăn ít nhất 1 lần/tháng 👨‍🍳",
	"Support giấc mơ của nhau 🌟",
}

var MemoryEmojis = []string{"💕", "🎉", "🥰", "😍", "🌸", "🎂", "✈️", "🎵", "📸", "🌅", "🏠", "💍", "🍽️", "🎬", "🎁", "🌈"}

// QuizTemplate is a "how well do you know {partner}" question. None of the
// options is correct; the other partner checks the answers.
type QuizTemplate struct {
	Question string
	Options  []string
}

var QuizTemplates = []QuizTemplate{
	{Question: "Món ăn yêu thích của {partner} là gì?", Options: []string{"Phở 🍜", "Bún bò 🥢", "Cơm tấm 🍚", "Lẩu 🍲"}},
	{Question: "{partner} thích làm gì khi buồn?", Options: []string{"Nghe nhạc 🎵", "Xem phim 🎬", "Ngủ 😴", "Ăn vặt 🍫"}},
	{Question: "Màu sắc yêu thích của {partner}?", Options: []string{"Hồng 💗", "Xanh dương 💙", "Tím 💜", "Đen 🖤"}},
	{Question: "{partner} sợ nhất điều gì?", Options: []string{"Gián 🪳", "Ma 👻", "Mất điện thoại 📱", "Bị bơ 🥶"}},
	{Question: "Khi hẹn hò, {partner} muốn đi đâu nhất?", Options: []string{"Cafe ☕", "Rạp phim 🎬", "Công viên 🌳", "Shopping 🛍️"}},
	{Question: "{partner} thường ngủ lúc mấy giờ?", Options: []string{"Trước 10h 😴", "10-11h 🌙", "11h-12h 🦉", "Sau 12h 🌌"}},
	{Question: "Kiểu dáng {partner} thích mặc nhất?", Options: []string{"Năng động 🏃", "Dễ thương 🎀", "Cool ngầu 😎", "Đơn giản 👕"}},
	{Question: "{partner} thích loại nhạc nào?", Options: []string{"Ballad 🎶", "K-Pop 🇰🇷", "US-UK 🎤", "Rap 🎧"}},
	{Question: "Biểu cảm nào giống {partner} nhất khi giận?", Options: []string{"Cold 🥶", "Hờn dỗi 😤", "Im lặng 😶", "Nói nhiều 🗣️"}},
	{Question: "{partner} thích pet nào nhất?", Options: []string{"Chó 🐕", "Mèo 🐱", "Hamster 🐹", "Cá 🐟"}},
}

var QuizResults = []string{
	"Hai đứa hiểu nhau quá đi! 💕",
	"Trả lời xong rồi, hỏi người kia xem đúng không nha! 😍",
	"Perfect couple! Hỏi bồ kiểm tra kết quả nè 🥰",
	"Wow, biết nhau rõ lắm nha! 💖",
}

// LetterTemplate is a love letter with {from} and {to} placeholders.
type LetterTemplate struct {
	Greeting string
	Body     string
	Closing  string
	Emoji    string
}

var LetterTemplates = []LetterTemplate{
	{
		Greeting: "Gửi {to} yêu dấu,",
		Body:     "Mỗi ngày trôi qua, {from} càng thêm nhận ra rằng {to} là điều tuyệt vời nhất đã đến trong cuộc đời {from}. Cảm ơn {to} vì luôn ở đây, vì nụ cười ấy, vì tất cả những khoảnh khắc bên nhau.",
		Closing:  "Yêu {to} nhiều lắm 💕",
		Emoji:    "💌",
	},
	{
		Greeting: "Hey {to}!",
		Body:     "Biết không, mỗi khi nghĩ về {to}, {from} lại thấy tim đập nhanh hơn. {to} giống như ly trà sữa ngon nhất mà {from} từng uống vậy: ngọt ngào, khó quên, và luôn muốn thêm!",
		Closing:  "Nhớ {to} muốn xỉu! 🧋💗",
		Emoji:    "🧋",
	},
	{
		Greeting: "Dear {to},",
		Body:     "Nếu mỗi lần {from} nhớ {to} là một ngôi sao, thì bầu trời sẽ sáng rực mỗi đêm. {to} không chỉ là người {from} yêu, mà còn là người bạn thân nhất, là nhà, là tất cả.",
		Closing:  "Mãi yêu {to} nha! ⭐💖",
		Emoji:    "⭐",
	},
	{
		Greeting: "{to} ơi,",
		Body:     "Hôm nay {from} muốn nói với {to} rằng: cảm ơn {to} đã kiên nhẫn với {from}, đã chấp nhận những lúc {from} bực bội vô lý, và vẫn luôn nắm tay {from} đi qua mọi thứ.",
		Closing:  "Có {to} là có cả thế giới! 🌍💕",
		Emoji:    "🌍",
	},
	{
		Greeting: "To: {to} 💕",
		Body:     "{from} không giỏi nói lời hoa mỹ, nhưng {from} muốn {to} biết: {to} là lý do {from} cười nhiều hơn, là lý do {from} muốn cố gắng mỗi ngày, và là người {from} muốn đi cùng đến cuối.",
		Closing:  "Love you 3000! 🫶",
		Emoji:    "🫶",
	},
	{
		Greeting: "Bồ {to} à,",
		Body:     "Nếu được chọn lại, {from} vẫn sẽ chọn {to}. Một nghìn lần, một triệu lần, hay bao nhiêu lần cũng vậy. Vì {to} là định nghĩa của hạnh phúc trong cuộc đời {from}.",
		Closing:  "{from} sẽ luôn ở đây! 💗🏠",
		Emoji:    "🏠",
	},
	{
		Greeting: "{to} nè!",
		Body:     "Lúc xa {to}, {from} nhớ {to} nhiều lắm. Nhớ cái cách {to} hay cười, nhớ vẻ mặt {to} khi giận dỗi, nhớ cả mùi hương quen thuộc khi ở bên {to}. Mau gặp nhau đi nha!",
		Closing:  "Nhớ {to} cả ngày! 🥺💕",
		Emoji:    "🥺",
	},
	{
		Greeting: "Dear {to} yêu quý,",
		Body:     "Tình yêu không phải là hoàn hảo, nhưng với {to}, {from} học được cách yêu thương thật lòng. Cảm ơn {to} đã là chính mình, vì đó là phiên bản tuyệt vời nhất rồi.",
		Closing:  "Cùng nhau mãi nhé! 💖✨",
		Emoji:    "✨",
	},
}
