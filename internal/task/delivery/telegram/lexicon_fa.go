package telegram

import "dotask-bot/internal/model"

var persian = lexicon{
	menuAddTask: "➕ افزودن تسک",
	menuTasks:   "📋 لیست وظایف",
	menuHelp:    "ℹ️ راهنما",
	aliases: map[menuAction][]string{
		menuActionAdd:    {"افزودن تسک", "تسک جدید"},
		menuActionList:   {"📋 لیست تسک‌ها", "📋 تسک‌ها", "لیست وظایف", "لیست تسک‌ها", "تسک‌ها"},
		menuActionHelp:   {"راهنما", "ℹ️ راهنمای استفاده"},
		menuActionCancel: {"انصراف", "لغو"},
	},

	priorities: map[model.Priority]string{
		model.PriorityHigh:   "بالا",
		model.PriorityMedium: "متوسط",
		model.PriorityLow:    "پایین",
	},
	priorityFilters: map[model.PriorityFilter]string{
		model.PriorityFilterAll:    "همه",
		model.PriorityFilterHigh:   "بالا",
		model.PriorityFilterMedium: "متوسط",
		model.PriorityFilterLow:    "پایین",
	},
	dateFilters: map[model.DateFilter]string{
		model.DateFilterAll:      "همه",
		model.DateFilterToday:    "امروز",
		model.DateFilterThisWeek: "این هفته",
		model.DateFilterOverdue:  "گذشته",
		model.DateFilterNoDate:   "بدون تاریخ",
	},
	dateFilterButtons: map[model.DateFilter]string{
		model.DateFilterAll:      "📅 همهٔ تاریخ‌ها",
		model.DateFilterToday:    "📆 امروز",
		model.DateFilterThisWeek: "🗓 این هفته",
		model.DateFilterOverdue:  "⏰ گذشته",
		model.DateFilterNoDate:   "🚫 بدون تاریخ",
	},
	snoozeLabels: map[int]string{
		15:          "۱۵ دقیقه",
		60:          "۱ ساعت",
		24 * 60:     "۱ روز",
		3 * 24 * 60: "۳ روز",
		7 * 24 * 60: "۱ هفته",
	},

	welcomeNamedFmt: "<b>🎉 خوش اومدی، %s!</b>",
	welcome:         "<b>🎉 خوش اومدی!</b>",
	intro:           "همهٔ تسک‌هات اینجا یک‌جا می‌مونه.",
	statsFmt:        "📊 وضعیت فعلی تو:\n• باز: <b>%d</b>\n• انجام‌شده: <b>%d</b>",
	payloadHintFmt:  "🧲 لینک ورودی تشخیص داده شد. برای ذخیره‌اش <b>%s</b> رو بزن.",
	pickOption:      "👇 یکی از گزینه‌ها رو انتخاب کن:",

	titleOpen:       "📋 <b>تسک‌های باز</b>",
	titleDone:       "✅ <b>تسک‌های انجام‌شده</b>",
	totalFmt:        "%s (کل: %d)",
	filtersFmt:      "🔎 فیلترها → اولویت: %s | تاریخ: %s",
	pageFmt:         "صفحه %d/%d",
	emptyList:       "<i>📭 هنوز هیچ تسکی اینجا نیست.</i>",
	statePending:    "⏳ در انتظار",
	stateDone:       "✅ انجام‌شده",
	noDate:          "بدون تاریخ",
	todayFmt:        "امروز %s",
	daysOverdueFmt:  "گذشته (%d روز)",
	hoursOverdueFmt: "گذشته (%d ساعت)",
	inDaysFmt:       "تا %d روز",
	inHoursFmt:      "تا %d ساعت",

	prev:     "◀️ قبلی",
	next:     "بعدی ▶️",
	showOpen: "📋 باز",
	showDone: "✅ انجام‌شده",
	refresh:  "🔄 تازه‌سازی",
	retry:    "🔄 تلاش دوباره",

	help: "<b>راهنمای استفاده</b>\n\n" +
		"• <b>➕ افزودن تسک</b> یا /add: ساخت تسک قدم به قدم\n" +
		"• <b>📋 لیست وظایف</b> یا /list: دیدن، فیلتر و مدیریت تسک‌ها\n" +
		"• /cancel: انصراف از مرحلهٔ فعلی\n\n" +
		"در لیست: ✅ انجام، ✏️ ویرایش، 🗑 حذف، ⏰ اسنوز و 🎚 تغییر اولویت.",
	askContent:      "📝 لطفاً محتوای تسک رو وارد کن (مثلاً: خرید نان)، یا /cancel:",
	contentTooShort: "❗ محتوای تسک خیلی کوتاهه. حداقل ۳ کاراکتر بفرست، یا /cancel.",
	askDue: "📅 موعد تسک کیه؟\n\n" +
		"بفرست: <code>today</code>، <code>tomorrow</code>، <code>in 3 days</code>، <code>next friday</code>، " +
		"<code>2025-01-31</code> یا <code>2025-01-31 18:00</code>.\n" +
		"برای بدون تاریخ <code>-</code> بفرست.",
	invalidDue:       "❗ تاریخ قابل خواندن نیست. مثلاً <code>tomorrow</code> یا <code>2025-01-31 18:00</code>، یا <code>-</code> برای بدون تاریخ.",
	askPriority:      "🎚 اولویت رو انتخاب کن:",
	pickPriority:     "🎚 لطفاً اولویت رو با دکمه‌های بالا انتخاب کن.",
	askNewContentFmt: "✏️ متن فعلی:\n<i>%s</i>\n\nمتن جدید تسک را بفرستید (برای انصراف: /cancel)",
	cancelled:        "❌ لغو شد.",
	nothingToCancel:  "چیزی برای لغو نیست.",
	useMenu:          "🔙 برگشت به منوی اصلی:",
	accountUnknown:   "❗ حساب شما شناسایی نشد. لطفاً ابتدا /start را بزنید.",
	genericError:     "⚠️ خطایی رخ داد. دوباره تلاش کن.",
	listError:        "⚠️ خطا در دریافت لیست وظایف.",
	taskAdded:        "✅ <b>تسک با موفقیت ذخیره شد! 🎉</b>",
	taskUpdated:      "✅ ویرایش شد.",
	taskNotFound:     "❗ تسک پیدا نشد.",
	slowDown:         "⏳ درخواست‌ها زیاده. کمی آهسته‌تر.",

	toastInvalid:  "❗ داده نامعتبر",
	toastNotFound: "❗ تسک پیدا نشد",
	toastDone:     "✅ انجام شد",
	toastUndone:   "↩️ بازگردانده شد",
	toastDeleted:  "🗑 حذف شد",
	toastSnoozed:  "🔁 اسنوز شد",
	toastPriority: "🎚 اولویت تغییر کرد",
	toastExpired:  "❗ این فرم منقضی شده",
	toastError:    "❗ خطا",
	toastAccount:  "❗ کاربر نامعتبر",
}
