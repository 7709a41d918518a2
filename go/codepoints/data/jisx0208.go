/*
Copyright 2025 The JPText Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package data

// JIS X 0208 non-kanji rows. Row numbers refer to the ku (row) of the
// 94x94 JIS X 0208 code table.

// JISX0208SpecialChars is rows 1-2: punctuation, brackets, math and
// typographic symbols.
var JISX0208SpecialChars = []rune{
	0x3000, // 　
	0x3001, // 、
	0x3002, // 。
	0xFF0C, // ，
	0xFF0E, // ．
	0x30FB, // ・
	0xFF1A, // ：
	0xFF1B, // ；
	0xFF1F, // ？
	0xFF01, // ！
	0x309B, // ゛
	0x309C, // ゜
	0x00B4, // ´
	0xFF40, // ｀
	0x00A8, // ¨
	0xFF3E, // ＾
	0xFFE3, // ￣
	0xFF3F, // ＿
	0x30FD, // ヽ
	0x30FE, // ヾ
	0x309D, // ゝ
	0x309E, // ゞ
	0x3003, // 〃
	0x4EDD, // 仝
	0x3005, // 々
	0x3006, // 〆
	0x3007, // 〇
	0x30FC, // ー
	0x2015, // ―
	0x2010, // ‐
	0xFF0F, // ／
	0xFF3C, // ＼
	0x301C, // 〜
	0x2016, // ‖
	0xFF5C, // ｜
	0x2026, // …
	0x2025, // ‥
	0x2018, // ‘
	0x2019, // ’
	0x201C, // “
	0x201D, // ”
	0xFF08, // （
	0xFF09, // ）
	0x3014, // 〔
	0x3015, // 〕
	0xFF3B, // ［
	0xFF3D, // ］
	0xFF5B, // ｛
	0xFF5D, // ｝
	0x3008, // 〈
	0x3009, // 〉
	0x300A, // 《
	0x300B, // 》
	0x300C, // 「
	0x300D, // 」
	0x300E, // 『
	0x300F, // 』
	0x3010, // 【
	0x3011, // 】
	0xFF0B, // ＋
	0x2212, // −
	0x00B1, // ±
	0x00D7, // ×
	0x00F7, // ÷
	0xFF1D, // ＝
	0x2260, // ≠
	0xFF1C, // ＜
	0xFF1E, // ＞
	0x2266, // ≦
	0x2267, // ≧
	0x221E, // ∞
	0x2234, // ∴
	0x2642, // ♂
	0x2640, // ♀
	0x00B0, // °
	0x2032, // ′
	0x2033, // ″
	0x2103, // ℃
	0xFFE5, // ￥
	0xFF04, // ＄
	0x00A2, // ¢
	0x00A3, // £
	0xFF05, // ％
	0xFF03, // ＃
	0xFF06, // ＆
	0xFF0A, // ＊
	0xFF20, // ＠
	0x00A7, // §
	0x2606, // ☆
	0x2605, // ★
	0x25CB, // ○
	0x25CF, // ●
	0x25CE, // ◎
	0x25C7, // ◇
	0x25C6, // ◆
	0x25A1, // □
	0x25A0, // ■
	0x25B3, // △
	0x25B2, // ▲
	0x25BD, // ▽
	0x25BC, // ▼
	0x203B, // ※
	0x3012, // 〒
	0x2192, // →
	0x2190, // ←
	0x2191, // ↑
	0x2193, // ↓
	0x3013, // 〓
	0x2208, // ∈
	0x220B, // ∋
	0x2286, // ⊆
	0x2287, // ⊇
	0x2282, // ⊂
	0x2283, // ⊃
	0x222A, // ∪
	0x2229, // ∩
	0x2227, // ∧
	0x2228, // ∨
	0x00AC, // ¬
	0x21D2, // ⇒
	0x21D4, // ⇔
	0x2200, // ∀
	0x2203, // ∃
	0x2220, // ∠
	0x22A5, // ⊥
	0x2312, // ⌒
	0x2202, // ∂
	0x2207, // ∇
	0x2261, // ≡
	0x2252, // ≒
	0x226A, // ≪
	0x226B, // ≫
	0x221A, // √
	0x223D, // ∽
	0x221D, // ∝
	0x2235, // ∵
	0x222B, // ∫
	0x222C, // ∬
	0x212B, // Å
	0x2030, // ‰
	0x266F, // ♯
	0x266D, // ♭
	0x266A, // ♪
	0x2020, // †
	0x2021, // ‡
	0x00B6, // ¶
	0x25EF, // ◯
}

// JISX0208LatinLetters is row 3: fullwidth digits and Latin letters.
var JISX0208LatinLetters = []rune{
	0xFF10, // ０
	0xFF11, // １
	0xFF12, // ２
	0xFF13, // ３
	0xFF14, // ４
	0xFF15, // ５
	0xFF16, // ６
	0xFF17, // ７
	0xFF18, // ８
	0xFF19, // ９
	0xFF21, // Ａ
	0xFF22, // Ｂ
	0xFF23, // Ｃ
	0xFF24, // Ｄ
	0xFF25, // Ｅ
	0xFF26, // Ｆ
	0xFF27, // Ｇ
	0xFF28, // Ｈ
	0xFF29, // Ｉ
	0xFF2A, // Ｊ
	0xFF2B, // Ｋ
	0xFF2C, // Ｌ
	0xFF2D, // Ｍ
	0xFF2E, // Ｎ
	0xFF2F, // Ｏ
	0xFF30, // Ｐ
	0xFF31, // Ｑ
	0xFF32, // Ｒ
	0xFF33, // Ｓ
	0xFF34, // Ｔ
	0xFF35, // Ｕ
	0xFF36, // Ｖ
	0xFF37, // Ｗ
	0xFF38, // Ｘ
	0xFF39, // Ｙ
	0xFF3A, // Ｚ
	0xFF41, // ａ
	0xFF42, // ｂ
	0xFF43, // ｃ
	0xFF44, // ｄ
	0xFF45, // ｅ
	0xFF46, // ｆ
	0xFF47, // ｇ
	0xFF48, // ｈ
	0xFF49, // ｉ
	0xFF4A, // ｊ
	0xFF4B, // ｋ
	0xFF4C, // ｌ
	0xFF4D, // ｍ
	0xFF4E, // ｎ
	0xFF4F, // ｏ
	0xFF50, // ｐ
	0xFF51, // ｑ
	0xFF52, // ｒ
	0xFF53, // ｓ
	0xFF54, // ｔ
	0xFF55, // ｕ
	0xFF56, // ｖ
	0xFF57, // ｗ
	0xFF58, // ｘ
	0xFF59, // ｙ
	0xFF5A, // ｚ
}

// JISX0208Hiragana is row 4 (0x3041-0x3093).
var JISX0208Hiragana = []rune{
	0x3041, // ぁ
	0x3042, // あ
	0x3043, // ぃ
	0x3044, // い
	0x3045, // ぅ
	0x3046, // う
	0x3047, // ぇ
	0x3048, // え
	0x3049, // ぉ
	0x304A, // お
	0x304B, // か
	0x304C, // が
	0x304D, // き
	0x304E, // ぎ
	0x304F, // く
	0x3050, // ぐ
	0x3051, // け
	0x3052, // げ
	0x3053, // こ
	0x3054, // ご
	0x3055, // さ
	0x3056, // ざ
	0x3057, // し
	0x3058, // じ
	0x3059, // す
	0x305A, // ず
	0x305B, // せ
	0x305C, // ぜ
	0x305D, // そ
	0x305E, // ぞ
	0x305F, // た
	0x3060, // だ
	0x3061, // ち
	0x3062, // ぢ
	0x3063, // っ
	0x3064, // つ
	0x3065, // づ
	0x3066, // て
	0x3067, // で
	0x3068, // と
	0x3069, // ど
	0x306A, // な
	0x306B, // に
	0x306C, // ぬ
	0x306D, // ね
	0x306E, // の
	0x306F, // は
	0x3070, // ば
	0x3071, // ぱ
	0x3072, // ひ
	0x3073, // び
	0x3074, // ぴ
	0x3075, // ふ
	0x3076, // ぶ
	0x3077, // ぷ
	0x3078, // へ
	0x3079, // べ
	0x307A, // ぺ
	0x307B, // ほ
	0x307C, // ぼ
	0x307D, // ぽ
	0x307E, // ま
	0x307F, // み
	0x3080, // む
	0x3081, // め
	0x3082, // も
	0x3083, // ゃ
	0x3084, // や
	0x3085, // ゅ
	0x3086, // ゆ
	0x3087, // ょ
	0x3088, // よ
	0x3089, // ら
	0x308A, // り
	0x308B, // る
	0x308C, // れ
	0x308D, // ろ
	0x308E, // ゎ
	0x308F, // わ
	0x3090, // ゐ
	0x3091, // ゑ
	0x3092, // を
	0x3093, // ん
}

// JISX0208Katakana is row 5 (0x30A1-0x30F6).
var JISX0208Katakana = []rune{
	0x30A1, // ァ
	0x30A2, // ア
	0x30A3, // ィ
	0x30A4, // イ
	0x30A5, // ゥ
	0x30A6, // ウ
	0x30A7, // ェ
	0x30A8, // エ
	0x30A9, // ォ
	0x30AA, // オ
	0x30AB, // カ
	0x30AC, // ガ
	0x30AD, // キ
	0x30AE, // ギ
	0x30AF, // ク
	0x30B0, // グ
	0x30B1, // ケ
	0x30B2, // ゲ
	0x30B3, // コ
	0x30B4, // ゴ
	0x30B5, // サ
	0x30B6, // ザ
	0x30B7, // シ
	0x30B8, // ジ
	0x30B9, // ス
	0x30BA, // ズ
	0x30BB, // セ
	0x30BC, // ゼ
	0x30BD, // ソ
	0x30BE, // ゾ
	0x30BF, // タ
	0x30C0, // ダ
	0x30C1, // チ
	0x30C2, // ヂ
	0x30C3, // ッ
	0x30C4, // ツ
	0x30C5, // ヅ
	0x30C6, // テ
	0x30C7, // デ
	0x30C8, // ト
	0x30C9, // ド
	0x30CA, // ナ
	0x30CB, // ニ
	0x30CC, // ヌ
	0x30CD, // ネ
	0x30CE, // ノ
	0x30CF, // ハ
	0x30D0, // バ
	0x30D1, // パ
	0x30D2, // ヒ
	0x30D3, // ビ
	0x30D4, // ピ
	0x30D5, // フ
	0x30D6, // ブ
	0x30D7, // プ
	0x30D8, // ヘ
	0x30D9, // ベ
	0x30DA, // ペ
	0x30DB, // ホ
	0x30DC, // ボ
	0x30DD, // ポ
	0x30DE, // マ
	0x30DF, // ミ
	0x30E0, // ム
	0x30E1, // メ
	0x30E2, // モ
	0x30E3, // ャ
	0x30E4, // ヤ
	0x30E5, // ュ
	0x30E6, // ユ
	0x30E7, // ョ
	0x30E8, // ヨ
	0x30E9, // ラ
	0x30EA, // リ
	0x30EB, // ル
	0x30EC, // レ
	0x30ED, // ロ
	0x30EE, // ヮ
	0x30EF, // ワ
	0x30F0, // ヰ
	0x30F1, // ヱ
	0x30F2, // ヲ
	0x30F3, // ン
	0x30F4, // ヴ
	0x30F5, // ヵ
	0x30F6, // ヶ
}

// JISX0208GreekLetters is row 6.
var JISX0208GreekLetters = []rune{
	0x0391, // Α
	0x0392, // Β
	0x0393, // Γ
	0x0394, // Δ
	0x0395, // Ε
	0x0396, // Ζ
	0x0397, // Η
	0x0398, // Θ
	0x0399, // Ι
	0x039A, // Κ
	0x039B, // Λ
	0x039C, // Μ
	0x039D, // Ν
	0x039E, // Ξ
	0x039F, // Ο
	0x03A0, // Π
	0x03A1, // Ρ
	0x03A3, // Σ
	0x03A4, // Τ
	0x03A5, // Υ
	0x03A6, // Φ
	0x03A7, // Χ
	0x03A8, // Ψ
	0x03A9, // Ω
	0x03B1, // α
	0x03B2, // β
	0x03B3, // γ
	0x03B4, // δ
	0x03B5, // ε
	0x03B6, // ζ
	0x03B7, // η
	0x03B8, // θ
	0x03B9, // ι
	0x03BA, // κ
	0x03BB, // λ
	0x03BC, // μ
	0x03BD, // ν
	0x03BE, // ξ
	0x03BF, // ο
	0x03C0, // π
	0x03C1, // ρ
	0x03C3, // σ
	0x03C4, // τ
	0x03C5, // υ
	0x03C6, // φ
	0x03C7, // χ
	0x03C8, // ψ
	0x03C9, // ω
}

// JISX0208CyrillicLetters is row 7.
var JISX0208CyrillicLetters = []rune{
	0x0410, // А
	0x0411, // Б
	0x0412, // В
	0x0413, // Г
	0x0414, // Д
	0x0415, // Е
	0x0401, // Ё
	0x0416, // Ж
	0x0417, // З
	0x0418, // И
	0x0419, // Й
	0x041A, // К
	0x041B, // Л
	0x041C, // М
	0x041D, // Н
	0x041E, // О
	0x041F, // П
	0x0420, // Р
	0x0421, // С
	0x0422, // Т
	0x0423, // У
	0x0424, // Ф
	0x0425, // Х
	0x0426, // Ц
	0x0427, // Ч
	0x0428, // Ш
	0x0429, // Щ
	0x042A, // Ъ
	0x042B, // Ы
	0x042C, // Ь
	0x042D, // Э
	0x042E, // Ю
	0x042F, // Я
	0x0430, // а
	0x0431, // б
	0x0432, // в
	0x0433, // г
	0x0434, // д
	0x0435, // е
	0x0451, // ё
	0x0436, // ж
	0x0437, // з
	0x0438, // и
	0x0439, // й
	0x043A, // к
	0x043B, // л
	0x043C, // м
	0x043D, // н
	0x043E, // о
	0x043F, // п
	0x0440, // р
	0x0441, // с
	0x0442, // т
	0x0443, // у
	0x0444, // ф
	0x0445, // х
	0x0446, // ц
	0x0447, // ч
	0x0448, // ш
	0x0449, // щ
	0x044A, // ъ
	0x044B, // ы
	0x044C, // ь
	0x044D, // э
	0x044E, // ю
	0x044F, // я
}

// JISX0208BoxDrawingChars is row 8.
var JISX0208BoxDrawingChars = []rune{
	0x2500, // ─
	0x2502, // │
	0x250C, // ┌
	0x2510, // ┐
	0x2518, // ┘
	0x2514, // └
	0x251C, // ├
	0x252C, // ┬
	0x2524, // ┤
	0x2534, // ┴
	0x253C, // ┼
	0x2501, // ━
	0x2503, // ┃
	0x250F, // ┏
	0x2513, // ┓
	0x251B, // ┛
	0x2517, // ┗
	0x2523, // ┣
	0x2533, // ┳
	0x252B, // ┫
	0x253B, // ┻
	0x254B, // ╋
	0x2520, // ┠
	0x252F, // ┯
	0x2528, // ┨
	0x2537, // ┷
	0x253F, // ┿
	0x251D, // ┝
	0x2530, // ┰
	0x2525, // ┥
	0x2538, // ┸
	0x2542, // ╂
}
