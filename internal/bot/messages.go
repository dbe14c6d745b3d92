package bot

import "math/rand"

const welcomeText = `🤖 <b>hoabot đã online!</b> 🤖

📌 Các lệnh nè:
🍚 /ancom → rủ bạn đi ăn cơm
🚽 /divesinh → nhắc đi vệ sinh cho nhẹ người 😆
💧 /uongnuoc HH:MM [nội dung] → đặt nhắc uống nước mỗi ngày
🧹 /cancel → hủy nhắc uống nước
🏁 /xuongca → còn bao lâu thì được về
🎄 /noel → đếm ngược tới Giáng Sinh
🧧 /tet → đếm ngược tới Tết`

const reminderUsageText = `❌ <b>Sai cú pháp rồi bạn ơi!</b>

Ví dụ nè:
<code>/uongnuoc 14:30</code>
<code>/uongnuoc 14:30 Nhắc uống nước nha</code>`

const reminderFailedText = "😵 <b>Không đặt được nhắc rồi.</b>\n\nBạn thử lại sau chút nha!"

const reminderCancelledText = "🧹 <b>Ok! Đã hủy nhắc uống nước.</b>\n\nKhi nào cần nhắc lại thì gọi mình nha 💙"

const reminderNothingText = "🤔 <b>Chưa có nhắc nào để hủy á.</b>\n\nBạn đặt bằng <code>/uongnuoc HH:MM</code> trước đã nhé!"

const reminderStaleText = "ℹ️ Nhắc này đã được thay bằng nhắc mới rồi, mình giữ nguyên nhắc mới nha."

const shiftEndedText = `🏁 <b>Hết ca rồi đó bạn ơi!</b> 🏁

Còn ngồi làm là làm vì đam mê đó nha 😅
Nhớ nghỉ ngơi nữa nèee ❤️`

const unknownCommandText = "🤷 Lệnh này mình chưa biết. Gõ /start để xem danh sách lệnh nha."

const tetUnknownText = "🧧 Mình chưa có lịch Tết năm sau, hẹn bạn cập nhật sau nha!"

var mealJokes = []string{
	"🍚 <b>Tới giờ ăn cơm rồi đóoo!</b> 🍚\n\nBụng réo lên là não lag liền nha 😵‍💫\nĂn xong rồi chiến tiếp cho máu 😎",
	"🍚 <b>Ăn cơm điiii!</b> 🍚\n\nCơm chờ lâu là cơm buồn đó 😂\nĂn no mới có sức đánh deadline 😤",
	"🍚 <b>Điểm danh bữa cơm nè</b> 🍚\n\nĐói quá dễ cáu lắm 😆\nĂn cho vui rồi quay lại làm tiếp nha!",
}

var restroomJokes = []string{
	"🚽 <b>Đi vệ sinh thôi nào!</b> 🚽\n\nĐừng cố nhịn, nhịn là bụng biểu tình đó 😵‍💫\nĐi xong nhẹ người quay lại chiến tiếp 😎",
	"🚽 <b>Tới giờ giải phóng nội tâm</b> 🚽\n\nXả stress đúng nơi đúng chỗ là hạnh phúc 😆",
}

var noelArrived = []string{
	"🎄 <b>Merry Christmas!</b> 🎄\n\nGiáng Sinh tới rồi, đi chơi thôi 🎅",
	"🎅 <b>Noel tới rồi nè!</b>\n\nChúc bạn một mùa Giáng Sinh ấm áp ✨",
}

var noelUpcoming = []string{
	"🎄 <b>Đếm ngược tới Noel</b> 🎄\n\n⏳ Còn: <b>%s</b>",
	"🎅 <b>Ông già Noel đang chuẩn bị quà</b>\n\n⏳ Còn: <b>%s</b> nữa thôi",
}

var tetArrived = []string{
	"🧧 <b>Chúc mừng năm mới!</b> 🧧\n\nAn khang thịnh vượng, vạn sự như ý 🎆",
	"🎆 <b>Tết tới rồi!</b>\n\nLì xì đầy túi nha 🧧",
}

var tetUpcoming = []string{
	"🧧 <b>Đếm ngược tới Tết</b> 🧧\n\n⏳ Còn: <b>%s</b>",
	"🌸 <b>Tết sắp về rồi</b>\n\n⏳ Còn: <b>%s</b>, ráng lên nha!",
}

// pick returns a uniformly random element of variants.
func pick(variants []string) string {
	return variants[rand.Intn(len(variants))]
}
